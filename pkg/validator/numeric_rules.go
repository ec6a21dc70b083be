package validator

import "github.com/dmitrymomot/deepvalid/pkg/constraint"

// Integer covers the integer types that widen to int64 without loss.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32
}

// Positive validates that value > 0.
func Positive[T Integer](path string, value T) Rule {
	n := int64(value)
	return Rule{
		Check: func() bool {
			return n > 0
		},
		Error: newViolation(path, constraint.NewPositive(), n),
	}
}

// Negative validates that value < 0. Zero fails, as it does for Positive.
func Negative[T Integer](path string, value T) Rule {
	n := int64(value)
	return Rule{
		Check: func() bool {
			return n < 0
		},
		Error: newViolation(path, constraint.NewNegative(), n),
	}
}

// InRange validates that min <= value <= max.
func InRange[T Integer](path string, value T, min, max int64) Rule {
	n := int64(value)
	return Rule{
		Check: func() bool {
			return min <= n && n <= max
		},
		Error: newViolation(path, constraint.NewInRange(min, max), n),
	}
}
