// Package constraint defines the closed vocabulary shared by the schema
// introspection layer and the validation engine: constraint kinds and their
// parameters, the container shapes a site can be declared with, the fixed
// violation messages, the constrained marker type and the configuration
// errors raised when a schema is malformed.
//
// # Constraint kinds
//
//   - NotNull   – value must not be nil (pointer, slice, map, interface sites)
//   - Positive  – integer must be > 0
//   - Negative  – integer must be < 0 (zero fails both Positive and Negative)
//   - NotBlank  – string must contain a non-whitespace character
//   - NotEmpty  – list, set, map or string must have at least one entry
//   - Size      – entry count or rune count must lie in [Min, Max]
//   - InRange   – integer must lie in [Min, Max]
//   - AnyOf     – string must equal one of Values
//
// # Error Handling
//
// Every schema defect is reported as a *ConfigError. It unwraps to
// ErrConfiguration and to a specific sentinel, so callers can branch with
// errors.Is:
//
//	if errors.Is(err, constraint.ErrInvertedBounds) {
//	    // min > max in a size or inrange tag
//	}
package constraint
