package validator

import (
	"context"
	"log/slog"
	"reflect"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
	"github.com/dmitrymomot/deepvalid/pkg/logger"
	"github.com/dmitrymomot/deepvalid/pkg/schema"
)

// Validator walks constrained object graphs and collects violations.
// It is safe for concurrent use.
type Validator struct {
	provider     schema.Provider
	providerOpts []schema.Option
	logger       *slog.Logger

	// checked holds reflect.Type keys of types whose sites passed the checker.
	checked sync.Map
}

// New creates a Validator reading the "validate" struct tag.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	if v.provider == nil {
		v.provider = schema.NewTagProvider(v.providerOpts...)
	}
	if v.logger == nil {
		v.logger = logger.Discard()
	}
	return v
}

// Validate walks value and returns every violation found in its graph.
// A nil value or a value whose type carries no Constrained marker yields no
// violations. A schema defect is returned as a *ConfigError and no
// violations are reported.
func (v *Validator) Validate(value any) (Violations, error) {
	return v.ValidateContext(context.Background(), value)
}

// ValidateContext is Validate with a context for log records.
func (v *Validator) ValidateContext(ctx context.Context, value any) (Violations, error) {
	start := time.Now()
	w := &walker{v: v}

	if err := w.walk(reflect.ValueOf(value)); err != nil {
		v.logger.ErrorContext(ctx, "invalid validation schema",
			logger.Type(reflect.TypeOf(value)),
			logger.Path(w.failedAt),
			logger.Error(err),
		)
		return nil, err
	}

	v.logger.DebugContext(ctx, "validation completed",
		logger.Type(reflect.TypeOf(value)),
		logger.Count("violations", len(w.violations)),
		logger.Duration(time.Since(start)),
	)

	return w.violations, nil
}

// Check validates value and returns its violations as an error.
// It returns nil when the graph is valid.
func (v *Validator) Check(value any) error {
	violations, err := v.Validate(value)
	if err != nil {
		return err
	}
	if violations.IsEmpty() {
		return nil
	}
	return violations
}

// ensureChecked runs the schema checker over all fields of t once.
func (v *Validator) ensureChecked(t reflect.Type, fields []schema.Field) error {
	if _, ok := v.checked.Load(t); ok {
		return nil
	}
	for _, f := range fields {
		if err := checkField(t.String(), f); err != nil {
			return err
		}
	}
	v.checked.Store(t, struct{}{})
	return nil
}

// walker holds the state of a single Validate call.
type walker struct {
	v          *Validator
	path       Path
	violations Violations
	failedAt   string
}

// walk validates a struct value treated as a root at the current path.
func (w *walker) walk(value reflect.Value) error {
	value = indirect(value)
	if !value.IsValid() || value.Kind() != reflect.Struct {
		return nil
	}

	t := value.Type()
	switch n := w.v.provider.MarkerCount(t); {
	case n == 0:
		return nil
	case n > 1:
		return &constraint.ConfigError{
			Type:   t.String(),
			Err:    constraint.ErrMarkerCount,
			Detail: "found " + strconv.Itoa(n) + " markers",
		}
	}

	fields, err := w.v.provider.Fields(t)
	if err != nil {
		return err
	}
	if err := w.v.ensureChecked(t, fields); err != nil {
		return err
	}

	for _, f := range fields {
		w.path.Push(FieldSegment(f.Name))
		err := w.field(f, w.v.provider.Value(value, f), location{typ: t.String(), field: f.Name, site: "field"})
		w.fail(err)
		w.path.Pop()
		if err != nil {
			return err
		}
	}
	return nil
}

// field handles a field site: recursion into custom values first, then the
// field's own constraints, then its elements.
func (w *walker) field(f schema.Field, value reflect.Value, loc location) error {
	s := f.Site
	if s.Custom || s.Dynamic {
		if err := w.walk(value); err != nil {
			return err
		}
	}
	for _, c := range s.Constraints {
		if err := w.dispatch(c, value, loc); err != nil {
			return err
		}
	}
	return w.elements(s, value, loc)
}

// element handles a container element, map key or map value site.
func (w *walker) element(s *schema.Site, value reflect.Value, loc location) error {
	if s == nil {
		return nil
	}
	for _, c := range s.Constraints {
		if err := w.dispatch(c, value, loc); err != nil {
			return err
		}
	}
	if s.Custom || s.Dynamic {
		if err := w.walk(value); err != nil {
			return err
		}
	}
	return w.elements(s, value, loc)
}

// elements iterates the entries of a container value.
func (w *walker) elements(s *schema.Site, value reflect.Value, loc location) error {
	value = indirect(value)
	if !value.IsValid() {
		return nil
	}

	switch s.Shape {
	case constraint.List:
		return w.list(s, value, loc)
	case constraint.Set:
		elemLoc := loc.child("element")
		iter := value.MapRange()
		for iter.Next() {
			if err := w.at(ElementSegment(), s.Elem, iter.Key(), elemLoc); err != nil {
				return err
			}
		}
	case constraint.Collection:
		elemLoc := loc.child("element")
		for i := 0; i < value.Len(); i++ {
			if err := w.at(ElementSegment(), s.Elem, value.Index(i), elemLoc); err != nil {
				return err
			}
		}
	case constraint.Map:
		keyLoc, valueLoc := loc.child("key"), loc.child("value")
		iter := value.MapRange()
		for iter.Next() {
			if err := w.at(KeySegment(), s.Key, iter.Key(), keyLoc); err != nil {
				return err
			}
			if err := w.at(ValueSegment(), s.Elem, iter.Value(), valueLoc); err != nil {
				return err
			}
		}
	}
	return nil
}

// list iterates a list in order. Nested lists are handled by element, which
// returns here through elements.
func (w *walker) list(s *schema.Site, value reflect.Value, loc location) error {
	elemLoc := loc.child("element")
	for i := 0; i < value.Len(); i++ {
		if err := w.at(IndexSegment(i), s.Elem, value.Index(i), elemLoc); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) at(seg Segment, s *schema.Site, value reflect.Value, loc location) error {
	w.path.Push(seg)
	defer w.path.Pop()
	err := w.element(s, value, loc)
	w.fail(err)
	return err
}

// fail remembers the deepest path at which the walk stopped.
func (w *walker) fail(err error) {
	if err != nil && w.failedAt == "" {
		w.failedAt = w.path.String()
	}
}
