package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
)

// DefaultTagName is the struct tag read by TagProvider.
const DefaultTagName = "validate"

// level holds the tokens between two dives.
type level struct {
	constraints []constraint.Constraint
	keys        []constraint.Constraint
	hasKeys     bool
}

// parseTag splits a tag into per-depth constraint levels.
func parseTag(tag string) ([]level, error) {
	levels := []level{{}}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return levels, nil
	}

	tokens, err := splitTokens(tag, ',')
	if err != nil {
		return nil, err
	}

	inKeys := false
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		cur := &levels[len(levels)-1]

		switch tok {
		case "":
			return nil, fmt.Errorf("empty token in %q", tag)
		case "dive":
			if inKeys {
				return nil, fmt.Errorf("dive inside keys block in %q", tag)
			}
			levels = append(levels, level{})
		case "keys":
			if inKeys || len(levels) == 1 || cur.hasKeys || len(cur.constraints) > 0 {
				return nil, fmt.Errorf("keys must directly follow dive in %q", tag)
			}
			inKeys = true
			cur.hasKeys = true
		case "endkeys":
			if !inKeys {
				return nil, fmt.Errorf("endkeys without keys in %q", tag)
			}
			inKeys = false
		default:
			c, err := parseConstraint(tok)
			if err != nil {
				return nil, err
			}
			if inKeys {
				cur.keys = append(cur.keys, c)
			} else {
				cur.constraints = append(cur.constraints, c)
			}
		}
	}

	if inKeys {
		return nil, fmt.Errorf("unterminated keys block in %q", tag)
	}
	return levels, nil
}

func parseConstraint(tok string) (constraint.Constraint, error) {
	name, arg, hasArg := strings.Cut(tok, "=")
	name = strings.ToLower(strings.TrimSpace(name))

	simple := map[string]constraint.Kind{
		"notnull":  constraint.NotNull,
		"positive": constraint.Positive,
		"negative": constraint.Negative,
		"notblank": constraint.NotBlank,
		"notempty": constraint.NotEmpty,
	}
	if k, ok := simple[name]; ok {
		if hasArg {
			return constraint.Constraint{}, fmt.Errorf("%s takes no parameters: %q", name, tok)
		}
		return constraint.Constraint{Kind: k}, nil
	}

	switch name {
	case "size", "inrange":
		min, max, err := parseBounds(arg)
		if err != nil {
			return constraint.Constraint{}, fmt.Errorf("%s: %w", name, err)
		}
		if name == "size" {
			return constraint.NewSize(min, max), nil
		}
		return constraint.NewInRange(min, max), nil
	case "anyof":
		values, err := splitTokens(arg, ' ')
		if err != nil {
			return constraint.Constraint{}, fmt.Errorf("anyof: %w", err)
		}
		values = unquoteValues(values)
		if len(values) == 0 {
			return constraint.Constraint{}, fmt.Errorf("anyof requires at least one value: %q", tok)
		}
		return constraint.NewAnyOf(values...), nil
	}

	return constraint.Constraint{}, fmt.Errorf("unknown constraint %q", name)
}

func parseBounds(arg string) (int64, int64, error) {
	lo, hi, ok := strings.Cut(arg, ":")
	if !ok {
		return 0, 0, fmt.Errorf("bounds must be min:max, got %q", arg)
	}
	min, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid min %q", lo)
	}
	max, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid max %q", hi)
	}
	return min, max, nil
}

// splitTokens splits s on sep outside single quotes. Quotes are kept.
func splitTokens(s string, sep rune) ([]string, error) {
	var (
		tokens  []string
		b       strings.Builder
		inQuote bool
		dirty   bool
	)
	for _, r := range s {
		switch {
		case r == '\'':
			inQuote = !inQuote
			dirty = true
			b.WriteRune(r)
		case r == sep && !inQuote:
			if sep != ' ' || dirty {
				tokens = append(tokens, b.String())
			}
			b.Reset()
			dirty = false
		default:
			dirty = true
			b.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q", s)
	}
	if sep != ' ' || dirty {
		tokens = append(tokens, b.String())
	}
	return tokens, nil
}

func unquoteValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ReplaceAll(v, "'", ""))
	}
	return out
}
