package constraint

import (
	"fmt"
	"strings"
)

// Message returns the fixed violation message for c.
func Message(c Constraint) string {
	switch c.Kind {
	case NotNull:
		return "must be not null"
	case NotBlank:
		return "must be not blank"
	case NotEmpty:
		return "must be not empty"
	case Positive:
		return "must be positive"
	case Negative:
		return "must be negative"
	case Size:
		return rangeMessage("size", c.Min, c.Max)
	case InRange:
		return rangeMessage("value", c.Min, c.Max)
	case AnyOf:
		return "must be one of " + QuoteValues(c.Values)
	default:
		return "is invalid"
	}
}

func rangeMessage(subject string, min, max int64) string {
	return fmt.Sprintf("%s must be in range between %d and %d", subject, min, max)
}

// TranslationKey returns the i18n key of the message for c.
func TranslationKey(c Constraint) string {
	switch c.Kind {
	case NotNull:
		return "validation.not_null"
	case NotBlank:
		return "validation.not_blank"
	case NotEmpty:
		return "validation.not_empty"
	case Positive:
		return "validation.positive"
	case Negative:
		return "validation.negative"
	case Size:
		return "validation.size"
	case InRange:
		return "validation.in_range"
	case AnyOf:
		return "validation.any_of"
	default:
		return "validation.invalid"
	}
}

// TranslationValues returns the named parameters substituted into the
// translated message for c.
func TranslationValues(c Constraint) map[string]any {
	switch c.Kind {
	case Size, InRange:
		return map[string]any{"min": c.Min, "max": c.Max}
	case AnyOf:
		return map[string]any{"values": QuoteValues(c.Values)}
	default:
		return nil
	}
}

// QuoteValues renders values as `"a", "b", "c"`.
func QuoteValues(values []string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(v)
		b.WriteByte('"')
	}
	return b.String()
}
