package validator

import (
	"log/slog"

	"github.com/dmitrymomot/deepvalid/pkg/schema"
)

// Option configures a Validator.
type Option func(*Validator)

// WithProvider replaces the struct-tag provider. Options setting the tag name
// or cache size have no effect on a custom provider.
func WithProvider(p schema.Provider) Option {
	return func(v *Validator) {
		if p != nil {
			v.provider = p
		}
	}
}

// WithLogger sets the logger used for completion and schema error records.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithTagName sets the struct tag the default provider reads.
func WithTagName(name string) Option {
	return func(v *Validator) {
		v.providerOpts = append(v.providerOpts, schema.WithTagName(name))
	}
}

// WithCacheSize bounds the number of types the default provider keeps parsed.
func WithCacheSize(size int) Option {
	return func(v *Validator) {
		v.providerOpts = append(v.providerOpts, schema.WithCacheSize(size))
	}
}
