package validator

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
)

// NotBlank validates that a string has a non-whitespace character.
func NotBlank(path, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: newViolation(path, constraint.NewNotBlank(), value),
	}
}

// AnyOf validates that a string equals one of values.
func AnyOf(path, value string, values ...string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(values, value)
		},
		Error: newViolation(path, constraint.NewAnyOf(values...), value),
	}
}
