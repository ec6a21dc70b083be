package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrInvalidConfig is returned when a parsed config fails its own constraints
	ErrInvalidConfig = errors.New("invalid validator configuration")

	// ErrNilPointer is returned when a nil pointer is provided to Parse
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
