package config

import (
	"errors"

	"github.com/dmitrymomot/deepvalid/pkg/schema"
	"github.com/dmitrymomot/deepvalid/pkg/validator"
)

// Config holds the settings of a validator instance.
type Config struct {
	validator.Constrained

	// TagName is the struct tag constraints are read from.
	TagName string `env:"DEEPVALID_TAG_NAME" envDefault:"validate" validate:"notblank"`
	// CacheSize bounds the number of struct types kept parsed.
	CacheSize int `env:"DEEPVALID_CACHE_SIZE" envDefault:"256" validate:"positive"`

	LogLevel  string `env:"DEEPVALID_LOG_LEVEL" envDefault:"info" validate:"anyof=debug info warn warning error"`
	LogFormat string `env:"DEEPVALID_LOG_FORMAT" envDefault:"text" validate:"anyof=text json"`

	// Language is the BCP 47 tag violations are localized into.
	Language string `env:"DEEPVALID_LANGUAGE" envDefault:"en" validate:"notblank,size=2:35"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		TagName:   schema.DefaultTagName,
		CacheSize: schema.DefaultCacheSize,
		LogLevel:  "info",
		LogFormat: "text",
		Language:  "en",
	}
}

// Validate checks c with the same engine it configures.
func (c Config) Validate() error {
	violations, err := validator.New().Validate(c)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if !violations.IsEmpty() {
		return errors.Join(ErrInvalidConfig, violations)
	}
	return nil
}
