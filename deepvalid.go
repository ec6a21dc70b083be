package deepvalid

import (
	"github.com/dmitrymomot/deepvalid/pkg/constraint"
	"github.com/dmitrymomot/deepvalid/pkg/validator"
)

type (
	// Constrained marks a struct type for deep validation. Embed it once.
	Constrained = constraint.Marker
	// Violation is one value that failed one constraint.
	Violation = validator.Violation
	// Violations is the result of one validation call.
	Violations = validator.Violations
	// ConfigError describes a defect in the constraint schema.
	ConfigError = constraint.ConfigError
)

// ErrConfiguration is wrapped by every schema defect.
var ErrConfiguration = constraint.ErrConfiguration

var std = validator.New()

// New creates a Validator. See the validator package options.
func New(opts ...validator.Option) *validator.Validator {
	return validator.New(opts...)
}

// Validate walks v with the default Validator and returns every violation in
// its graph. A schema defect is returned as a *ConfigError.
func Validate(v any) (Violations, error) {
	return std.Validate(v)
}

// Check is Validate in error form: nil when v is valid, Violations when it is
// not and a *ConfigError when the schema is broken.
func Check(v any) error {
	return std.Check(v)
}
