package i18n

import (
	"errors"
	"fmt"
)

// Package errors use descriptive messages for debugging while avoiding implementation details.
var (
	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Catalog loading
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrFailedToReadCatalogs = errors.New("failed to read translation catalogs")
	ErrNoTranslations       = errors.New("no translations found")

	// Language tags
	ErrInvalidLanguage = errors.New("invalid language tag")
)

// ErrLanguageNotSupported indicates that the requested language is not available
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
