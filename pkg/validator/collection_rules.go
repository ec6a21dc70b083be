package validator

import "github.com/dmitrymomot/deepvalid/pkg/constraint"

// NotEmpty validates that a list, set, map or string has at least one entry.
// For strings, length counts runes, so whitespace is not empty.
func NotEmpty(path string, value any, length int) Rule {
	return Rule{
		Check: func() bool {
			return length > 0
		},
		Error: newViolation(path, constraint.NewNotEmpty(), value),
	}
}

// Size validates that min <= length <= max.
func Size(path string, value any, length int, min, max int64) Rule {
	return Rule{
		Check: func() bool {
			n := int64(length)
			return min <= n && n <= max
		},
		Error: newViolation(path, constraint.NewSize(min, max), value),
	}
}

// NotEmptySlice is NotEmpty for a typed slice.
func NotEmptySlice[T any](path string, value []T) Rule {
	return NotEmpty(path, value, len(value))
}

// SizeSlice is Size for a typed slice.
func SizeSlice[T any](path string, value []T, min, max int64) Rule {
	return Size(path, value, len(value), min, max)
}

// NotEmptyMap is NotEmpty for a typed map.
func NotEmptyMap[K comparable, V any](path string, value map[K]V) Rule {
	return NotEmpty(path, value, len(value))
}

// SizeMap is Size for a typed map.
func SizeMap[K comparable, V any](path string, value map[K]V, min, max int64) Rule {
	return Size(path, value, len(value), min, max)
}
