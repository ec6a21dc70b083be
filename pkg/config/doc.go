// Package config loads the settings of a validator from environment
// variables and optional .env files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more .env files (by default ./.env, if present).
//   - Parse populates any struct from `env` tags.
//   - Load combines both into a validated Config.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// Recognized variables:
//
//	DEEPVALID_TAG_NAME    struct tag holding constraints (validate)
//	DEEPVALID_CACHE_SIZE  number of struct types kept parsed (256)
//	DEEPVALID_LOG_LEVEL   debug, info, warn or error (info)
//	DEEPVALID_LOG_FORMAT  text or json (text)
//	DEEPVALID_LANGUAGE    language violations are localized into (en)
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrLoadingEnvFile` – an explicitly named .env file could not be read.
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrInvalidConfig`  – parsed values violate the Config constraints.
//   - `ErrNilPointer`     – nil pointer passed to Parse.
//
// Config carries validate tags and is checked with the validator package
// itself, so an invalid config error also unwraps to validator.Violations.
package config
