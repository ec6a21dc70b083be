package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv loads variables from the given .env files into the process
// environment. Variables that are already set are not overridden.
// Without arguments it loads ./.env once and ignores a missing file.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		defaultEnvLoaded.Do(func() {
			// The default .env file is optional
			_ = godotenv.Load()
		})
		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Parse populates v from environment variables using `env` struct tags.
//
// Example:
//
//	type CacheConfig struct {
//		Size int `env:"CACHE_SIZE" envDefault:"256"`
//	}
//
//	var cfg CacheConfig
//	if err := config.Parse(&cfg); err != nil {
//		// Handle error
//	}
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Load reads the optional .env files, parses the environment into a Config
// and validates it.
func Load(files ...string) (Config, error) {
	if err := LoadEnv(files...); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
//
// Example:
//
//	cfg := config.MustLoad()
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}
