package constraint

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration is wrapped by every schema defect.
	ErrConfiguration = errors.New("invalid validation schema")

	// ErrIllegalConstraint is returned when a constraint is attached to a site whose declared type it cannot check.
	ErrIllegalConstraint = errors.New("constraint is not applicable to the declared type")

	// ErrInvertedBounds is returned when a size or inrange constraint has min > max.
	ErrInvertedBounds = errors.New("constraint bounds are inverted: max < min")

	// ErrConflictingSign is returned when one site carries both positive and negative.
	ErrConflictingSign = errors.New("positive and negative constraints at the same site")

	// ErrMarkerCount is returned when a type carries more than one constrained marker.
	ErrMarkerCount = errors.New("type must carry exactly one constrained marker")

	// ErrIllegalNesting is returned for sets, maps or collections of containers.
	ErrIllegalNesting = errors.New("illegal container nesting: only lists may contain lists")

	// ErrUnmappedValue is returned when a runtime value has no evaluator for the constraint.
	ErrUnmappedValue = errors.New("no evaluator for runtime value")

	// ErrMalformedTag is returned when a constraint tag cannot be parsed.
	ErrMalformedTag = errors.New("malformed constraint tag")
)

// ConfigError describes a schema defect. It is never a per-value condition.
type ConfigError struct {
	// Type is the struct type owning the field.
	Type string
	// Field is the Go field name.
	Field string
	// Site locates the constraint within the field: "field", "element",
	// "element.element", "key" or "value".
	Site string
	// Constraint is the offending constraint, empty for structural defects.
	Constraint string
	// Detail carries extra context such as the declared shape or the bad token.
	Detail string
	// Err is one of the package sentinels.
	Err error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString(ErrConfiguration.Error())
	if e.Type != "" {
		fmt.Fprintf(&b, ": type %s", e.Type)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	if e.Site != "" && e.Site != "field" {
		fmt.Fprintf(&b, " (%s)", e.Site)
	}
	if e.Constraint != "" {
		fmt.Fprintf(&b, ": %s", e.Constraint)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	return b.String()
}

func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrConfiguration}
	}
	return []error{ErrConfiguration, e.Err}
}

// IsConfigError reports whether err is a schema defect.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// AsConfigError extracts the *ConfigError from err.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
