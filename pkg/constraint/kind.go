package constraint

import (
	"fmt"
	"slices"
)

// Kind identifies a constraint.
type Kind uint8

const (
	NotNull Kind = iota + 1
	Positive
	Negative
	NotBlank
	NotEmpty
	Size
	InRange
	AnyOf
)

var kindNames = map[Kind]string{
	NotNull:  "NotNull",
	Positive: "Positive",
	Negative: "Negative",
	NotBlank: "NotBlank",
	NotEmpty: "NotEmpty",
	Size:     "Size",
	InRange:  "InRange",
	AnyOf:    "AnyOf",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Kinds returns all declared kinds in declaration order.
func Kinds() []Kind {
	return []Kind{NotNull, Positive, Negative, NotBlank, NotEmpty, Size, InRange, AnyOf}
}

// Constraint is a constraint kind together with its parameters.
// Min and Max are meaningful for Size and InRange, Values for AnyOf.
type Constraint struct {
	Kind   Kind
	Min    int64
	Max    int64
	Values []string
}

func (c Constraint) String() string {
	switch c.Kind {
	case Size, InRange:
		return fmt.Sprintf("%s(%d, %d)", c.Kind, c.Min, c.Max)
	case AnyOf:
		return fmt.Sprintf("%s(%s)", c.Kind, QuoteValues(c.Values))
	default:
		return c.Kind.String()
	}
}

// Bounded reports whether the constraint carries a [Min, Max] range.
func (c Constraint) Bounded() bool {
	return c.Kind == Size || c.Kind == InRange
}

// Contains reports whether s is one of the AnyOf values.
func (c Constraint) Contains(s string) bool {
	return slices.Contains(c.Values, s)
}

func NewNotNull() Constraint  { return Constraint{Kind: NotNull} }
func NewPositive() Constraint { return Constraint{Kind: Positive} }
func NewNegative() Constraint { return Constraint{Kind: Negative} }
func NewNotBlank() Constraint { return Constraint{Kind: NotBlank} }
func NewNotEmpty() Constraint { return Constraint{Kind: NotEmpty} }

func NewSize(min, max int64) Constraint {
	return Constraint{Kind: Size, Min: min, Max: max}
}

func NewInRange(min, max int64) Constraint {
	return Constraint{Kind: InRange, Min: min, Max: max}
}

func NewAnyOf(values ...string) Constraint {
	return Constraint{Kind: AnyOf, Values: slices.Clone(values)}
}

// Has reports whether any constraint in cs is of kind k.
func Has(cs []Constraint, k Kind) bool {
	return slices.ContainsFunc(cs, func(c Constraint) bool { return c.Kind == k })
}
