package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser is an interface for parsing translation catalogs.
type Parser interface {
	// Parse processes the given content string and returns a nested map structure.
	// The outer map is keyed by language tag, the inner map holds translation
	// keys and their values, possibly nested.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file extension
	// The extension may or may not include a leading dot (e.g. both "yaml" and ".yaml" are valid)
	SupportsFileExtension(ext string) bool
}

// YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns a map of translations
func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		transMap, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrFailedToParseYAML, lang, val)
		}
		result[lang] = transMap
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}

	return result, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
