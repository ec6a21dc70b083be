package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewDefault creates a Translator serving the built-in violation messages.
func NewDefault(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(NewYAMLParser(), locales, "locales"), options...)
}
