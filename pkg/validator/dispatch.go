package validator

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
	"github.com/dmitrymomot/deepvalid/pkg/schema"
)

// evaluator builds the rule for a non-nil, dereferenced value.
type evaluator func(v reflect.Value, c constraint.Constraint) Rule

// evaluators maps constraint kind and runtime shape to an evaluator.
// NotNull is resolved before the lookup.
var evaluators = map[constraint.Kind]map[constraint.Shape]evaluator{
	constraint.Positive: numeric(func(n int64, _ constraint.Constraint) Rule {
		return Positive("", n)
	}),
	constraint.Negative: numeric(func(n int64, _ constraint.Constraint) Rule {
		return Negative("", n)
	}),
	constraint.InRange: numeric(func(n int64, c constraint.Constraint) Rule {
		return InRange("", n, c.Min, c.Max)
	}),
	constraint.NotBlank: {
		constraint.String: func(v reflect.Value, _ constraint.Constraint) Rule {
			return NotBlank("", v.String())
		},
	},
	constraint.AnyOf: {
		constraint.String: func(v reflect.Value, c constraint.Constraint) Rule {
			return AnyOf("", v.String(), c.Values...)
		},
	},
	constraint.NotEmpty: sized(func(value any, length int, _ constraint.Constraint) Rule {
		return NotEmpty("", value, length)
	}),
	constraint.Size: sized(func(value any, length int, c constraint.Constraint) Rule {
		return Size("", value, length, c.Min, c.Max)
	}),
}

func numeric(fn func(n int64, c constraint.Constraint) Rule) map[constraint.Shape]evaluator {
	eval := func(v reflect.Value, c constraint.Constraint) Rule {
		return fn(widen(v), c)
	}
	return map[constraint.Shape]evaluator{
		constraint.Byte:    eval,
		constraint.Short:   eval,
		constraint.Integer: eval,
		constraint.Long:    eval,
	}
}

func sized(fn func(value any, length int, c constraint.Constraint) Rule) map[constraint.Shape]evaluator {
	container := func(v reflect.Value, c constraint.Constraint) Rule {
		return fn(interfaceOf(v), v.Len(), c)
	}
	return map[constraint.Shape]evaluator{
		constraint.String: func(v reflect.Value, c constraint.Constraint) Rule {
			s := v.String()
			return fn(s, utf8.RuneCountInString(s), c)
		},
		constraint.List: container,
		constraint.Set:  container,
		constraint.Map:  container,
	}
}

// widen converts any Byte, Short, Integer or Long value to int64.
func widen(v reflect.Value) int64 {
	switch v.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(v.Uint())
	default:
		return v.Int()
	}
}

// location identifies the site being dispatched, for error reporting.
type location struct {
	typ   string
	field string
	site  string
}

func (l location) child(name string) location {
	if l.site == "" || l.site == "field" {
		l.site = name
	} else {
		l.site += "." + name
	}
	return l
}

// dispatch evaluates c against v and records a failure.
// A value is null when it is nil at any pointer or interface level, or when
// it ends in a nil slice or map.
func (w *walker) dispatch(c constraint.Constraint, v reflect.Value, loc location) error {
	v = indirect(v)
	if isNil(v) {
		if c.Kind == constraint.NotNull {
			w.apply(NotNull("", true))
		}
		return nil
	}
	if c.Kind == constraint.NotNull {
		return nil
	}

	shape := schema.Classify(v.Type())

	eval, ok := evaluators[c.Kind][shape]
	if !ok {
		return &constraint.ConfigError{
			Type:       loc.typ,
			Field:      loc.field,
			Site:       loc.site,
			Constraint: c.String(),
			Err:        constraint.ErrUnmappedValue,
			Detail:     fmt.Sprintf("runtime type %s (%s)", v.Type(), shape),
		}
	}

	w.apply(eval(v, c))
	return nil
}

// apply records the rule's violation at the current path if the check fails.
func (w *walker) apply(r Rule) {
	if r.Check() {
		return
	}
	violation := r.Error
	if violation.Path == "" {
		violation.Path = w.path.String()
	}
	w.violations.Add(violation)
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// indirect follows pointers and interfaces. It returns the zero Value for nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func interfaceOf(v reflect.Value) any {
	if v.CanInterface() {
		return v.Interface()
	}
	return fmt.Sprint(v)
}
