package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
)

// Violation records one value that failed one constraint.
type Violation struct {
	// Path is the canonical location of the value, e.g. "guests[0].firstName".
	Path string
	// Message is the fixed human-readable message.
	Message string
	// Value is the observed value: nil for null, int64 for integers,
	// string for strings, the container itself for lists, sets and maps.
	Value any
	// Constraint is the kind that failed.
	Constraint        constraint.Kind
	TranslationKey    string
	TranslationValues map[string]any
}

// FailedValue renders Value for display: empty or whitespace-only strings
// are wrapped in double quotes, nil becomes "null".
func (v Violation) FailedValue() any {
	switch val := v.Value.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(val) == "" {
			return `"` + val + `"`
		}
		return val
	default:
		return val
	}
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%v)", v.Path, v.Message, v.FailedValue())
}

// Equal compares message, path and rendered failed value.
func (v Violation) Equal(other Violation) bool {
	return v.Path == other.Path &&
		v.Message == other.Message &&
		fmt.Sprint(v.FailedValue()) == fmt.Sprint(other.FailedValue())
}

func newViolation(path string, c constraint.Constraint, value any) Violation {
	return Violation{
		Path:              path,
		Message:           constraint.Message(c),
		Value:             value,
		Constraint:        c.Kind,
		TranslationKey:    constraint.TranslationKey(c),
		TranslationValues: constraint.TranslationValues(c),
	}
}

// Violations is the result of one validation call.
// Equal-content violations are kept: nothing is deduplicated.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Path, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

// Has reports whether any violation is located at path.
func (vs Violations) Has(path string) bool {
	for _, v := range vs {
		if v.Path == path {
			return true
		}
	}
	return false
}

// Get returns the messages of all violations at path.
func (vs Violations) Get(path string) []string {
	var messages []string
	for _, v := range vs {
		if v.Path == path {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

func (vs Violations) GetErrors(path string) []Violation {
	var out []Violation
	for _, v := range vs {
		if v.Path == path {
			out = append(out, v)
		}
	}
	return out
}

// Paths returns the distinct paths in first-seen order.
func (vs Violations) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Path] {
			paths = append(paths, v.Path)
			seen[v.Path] = true
		}
	}
	return paths
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Contains reports whether a violation with equal content is present.
func (vs Violations) Contains(target Violation) bool {
	for _, v := range vs {
		if v.Equal(target) {
			return true
		}
	}
	return false
}

// Sorted returns a copy ordered by path, then message.
func (vs Violations) Sorted() Violations {
	out := make(Violations, len(vs))
	copy(out, vs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Message < out[j].Message
	})
	return out
}

// Translator renders a translation key for a language. Arguments are
// name/value pairs substituted into %{name} placeholders.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Localize returns a copy with messages translated into lang. Violations
// whose key has no translation keep their original message.
func (vs Violations) Localize(tr Translator, lang string) Violations {
	if tr == nil || len(vs) == 0 {
		return vs
	}

	out := make(Violations, len(vs))
	for i, v := range vs {
		args := make([]string, 0, len(v.TranslationValues)*2)
		for name, val := range v.TranslationValues {
			args = append(args, name, fmt.Sprint(val))
		}
		if msg := tr.T(lang, v.TranslationKey, args...); msg != "" && msg != v.TranslationKey {
			v.Message = msg
		}
		out[i] = v
	}
	return out
}

// Rule pairs a check with the violation reported when the check fails.
type Rule struct {
	Check func() bool
	Error Violation
}

// Apply executes rules and returns the failures as Violations, or nil.
func Apply(rules ...Rule) error {
	var violations Violations

	for _, rule := range rules {
		if !rule.Check() {
			violations = append(violations, rule.Error)
		}
	}

	if violations.IsEmpty() {
		return nil
	}
	return violations
}

// ExtractViolations extracts Violations from an error.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var violations Violations
	if errors.As(err, &violations) {
		return violations
	}
	return nil
}

func IsViolations(err error) bool {
	if err == nil {
		return false
	}

	var violations Violations
	return errors.As(err, &violations)
}
