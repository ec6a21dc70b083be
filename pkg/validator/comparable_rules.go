package validator

import "github.com/dmitrymomot/deepvalid/pkg/constraint"

// NotNull validates that a value is present.
func NotNull(path string, isNil bool) Rule {
	return Rule{
		Check: func() bool {
			return !isNil
		},
		Error: newViolation(path, constraint.NewNotNull(), nil),
	}
}

// NotNullPtr is NotNull for a typed pointer.
func NotNullPtr[T any](path string, value *T) Rule {
	return NotNull(path, value == nil)
}
