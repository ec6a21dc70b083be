package schema

import (
	"reflect"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
)

// maxNesting bounds Site trees built from self-referential container types.
const maxNesting = 64

// Site is one position constraints can be attached to: a field, a container
// element, a map key or a map value.
type Site struct {
	// Type is the declared type, pointers included.
	Type reflect.Type
	// Shape is the shape of Type after pointer dereference.
	Shape constraint.Shape
	// Nullable is true for pointer, slice, map and interface sites.
	Nullable bool
	// Custom is true for struct sites, which are walked recursively.
	Custom bool
	// Dynamic is true for interface sites; the runtime value decides whether
	// a walk happens.
	Dynamic bool
	// Constraints attached directly to this site.
	Constraints []constraint.Constraint
	// Elem is the list, set or collection element site, or the map value site.
	Elem *Site
	// Key is the map key site.
	Key *Site
}

// Name returns a short description of the declared type.
func (s *Site) Name() string {
	if s == nil || s.Type == nil {
		return "<nil>"
	}
	return s.Type.String()
}

// Field describes one exported struct field.
type Field struct {
	Name  string
	Index int
	Tag   string
	Site  *Site
}

// Classify returns the shape of t after pointer dereference.
func Classify(t reflect.Type) constraint.Shape {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int8, reflect.Uint8:
		return constraint.Byte
	case reflect.Int16, reflect.Uint16:
		return constraint.Short
	case reflect.Int32, reflect.Uint32:
		return constraint.Integer
	case reflect.Int, reflect.Int64:
		return constraint.Long
	case reflect.String:
		return constraint.String
	case reflect.Slice:
		return constraint.List
	case reflect.Array:
		return constraint.Collection
	case reflect.Map:
		if isSetElem(t.Elem()) {
			return constraint.Set
		}
		return constraint.Map
	case reflect.Struct:
		return constraint.Custom
	default:
		return constraint.Other
	}
}

// isSetElem reports whether a map value type marks the map as a set.
func isSetElem(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}

func buildSite(t reflect.Type, levels []level, path string, depth int) (*Site, error) {
	if depth > maxNesting {
		return nil, &constraint.ConfigError{
			Site:   path,
			Err:    constraint.ErrIllegalNesting,
			Detail: "type nests deeper than supported: " + t.String(),
		}
	}

	s := &Site{Type: t}
	base := t
	for base.Kind() == reflect.Pointer {
		s.Nullable = true
		base = base.Elem()
	}
	switch base.Kind() {
	case reflect.Slice, reflect.Map:
		s.Nullable = true
	case reflect.Interface:
		s.Nullable = true
		s.Dynamic = true
	}
	s.Shape = Classify(base)
	s.Custom = s.Shape == constraint.Custom

	var cur level
	if len(levels) > 0 {
		cur = levels[0]
	}
	s.Constraints = cur.constraints
	if cur.hasKeys {
		return nil, &constraint.ConfigError{
			Site:   path,
			Err:    constraint.ErrMalformedTag,
			Detail: "keys block on non-map type " + t.String(),
		}
	}

	var rest []level
	if len(levels) > 1 {
		rest = levels[1:]
	}

	var err error
	switch s.Shape {
	case constraint.List, constraint.Collection:
		s.Elem, err = buildSite(base.Elem(), rest, childPath(path, "element"), depth+1)
	case constraint.Set:
		s.Elem, err = buildSite(base.Key(), rest, childPath(path, "element"), depth+1)
	case constraint.Map:
		var keyLevels, valueLevels []level
		if len(rest) > 0 {
			keyLevels = []level{{constraints: rest[0].keys}}
			valueLevels = append([]level{{constraints: rest[0].constraints}}, rest[1:]...)
		}
		if s.Key, err = buildSite(base.Key(), keyLevels, childPath(path, "key"), depth+1); err != nil {
			return nil, err
		}
		s.Elem, err = buildSite(base.Elem(), valueLevels, childPath(path, "value"), depth+1)
	default:
		if len(rest) > 0 {
			return nil, &constraint.ConfigError{
				Site:   path,
				Err:    constraint.ErrMalformedTag,
				Detail: "dive on non-container type " + t.String(),
			}
		}
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

func childPath(parent, child string) string {
	if parent == "" || parent == "field" {
		return child
	}
	return parent + "." + child
}
