package validator

import (
	"fmt"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
	"github.com/dmitrymomot/deepvalid/pkg/schema"
)

// checkField verifies every site of f before any value is read.
func checkField(typ string, f schema.Field) error {
	return checkSite(location{typ: typ, field: f.Name, site: "field"}, f.Site)
}

func checkSite(loc location, s *schema.Site) error {
	if s == nil {
		return nil
	}

	if err := checkNesting(loc, s); err != nil {
		return err
	}

	for _, c := range s.Constraints {
		if err := checkConstraint(loc, s, c); err != nil {
			return err
		}
	}

	if constraint.Has(s.Constraints, constraint.Positive) && constraint.Has(s.Constraints, constraint.Negative) {
		return &constraint.ConfigError{
			Type:  loc.typ,
			Field: loc.field,
			Site:  loc.site,
			Err:   constraint.ErrConflictingSign,
		}
	}

	switch s.Shape {
	case constraint.Map:
		if err := checkSite(loc.child("key"), s.Key); err != nil {
			return err
		}
		return checkSite(loc.child("value"), s.Elem)
	case constraint.List, constraint.Set, constraint.Collection:
		return checkSite(loc.child("element"), s.Elem)
	}
	return nil
}

// checkNesting allows lists of lists only.
func checkNesting(loc location, s *schema.Site) error {
	var children []*schema.Site
	switch s.Shape {
	case constraint.List:
		if s.Elem != nil && s.Elem.Shape.Container() && s.Elem.Shape != constraint.List {
			children = append(children, s.Elem)
		}
	case constraint.Set, constraint.Collection:
		if s.Elem != nil && s.Elem.Shape.Container() {
			children = append(children, s.Elem)
		}
	case constraint.Map:
		for _, child := range []*schema.Site{s.Key, s.Elem} {
			if child != nil && child.Shape.Container() {
				children = append(children, child)
			}
		}
	}

	if len(children) == 0 {
		return nil
	}
	return &constraint.ConfigError{
		Type:   loc.typ,
		Field:  loc.field,
		Site:   loc.site,
		Err:    constraint.ErrIllegalNesting,
		Detail: fmt.Sprintf("%s of %s", s.Shape, children[0].Shape),
	}
}

func checkConstraint(loc location, s *schema.Site, c constraint.Constraint) error {
	fail := func(err error, detail string) error {
		return &constraint.ConfigError{
			Type:       loc.typ,
			Field:      loc.field,
			Site:       loc.site,
			Constraint: c.String(),
			Err:        err,
			Detail:     detail,
		}
	}

	if !c.Kind.Valid() {
		return fail(constraint.ErrIllegalConstraint, "unknown constraint kind")
	}
	if c.Kind == constraint.NotNull && !s.Nullable {
		return fail(constraint.ErrIllegalConstraint, "declared type "+s.Name()+" can never be nil")
	}
	if !constraint.Legal(c.Kind, s.Shape) {
		return fail(constraint.ErrIllegalConstraint, fmt.Sprintf("declared type %s (%s)", s.Name(), s.Shape))
	}
	if c.Bounded() && c.Max < c.Min {
		return fail(constraint.ErrInvertedBounds, fmt.Sprintf("%d < %d", c.Max, c.Min))
	}
	if c.Kind == constraint.AnyOf && len(c.Values) == 0 {
		return fail(constraint.ErrIllegalConstraint, "no allowed values")
	}
	return nil
}
