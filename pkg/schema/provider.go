package schema

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
)

// Provider supplies the static structure of constrained types.
type Provider interface {
	// Fields returns the descriptors of t's fields in declaration order.
	Fields(t reflect.Type) ([]Field, error)
	// Value returns the value of field f in struct value v.
	Value(v reflect.Value, f Field) reflect.Value
	// MarkerCount returns how many constrained markers t carries.
	MarkerCount(t reflect.Type) int
}

// DefaultCacheSize is the number of types a TagProvider keeps parsed.
const DefaultCacheSize = 256

// TagProvider reads constraints from struct tags.
type TagProvider struct {
	tagName string
	cache   *descriptorCache
}

// Option configures a TagProvider.
type Option func(*TagProvider)

// WithTagName sets the struct tag to read. Empty names are ignored.
func WithTagName(name string) Option {
	return func(p *TagProvider) {
		if name != "" {
			p.tagName = name
		}
	}
}

// WithCacheSize bounds the descriptor cache. Non-positive sizes are ignored.
func WithCacheSize(size int) Option {
	return func(p *TagProvider) {
		if size > 0 {
			p.cache = newDescriptorCache(size)
		}
	}
}

// NewTagProvider creates a provider reading the "validate" tag by default.
func NewTagProvider(opts ...Option) *TagProvider {
	p := &TagProvider{tagName: DefaultTagName}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil {
		p.cache = newDescriptorCache(DefaultCacheSize)
	}
	return p
}

// TagName returns the struct tag the provider reads.
func (p *TagProvider) TagName() string {
	return p.tagName
}

// Fields returns the cached descriptors for t, parsing them on first use.
// Parse failures are cached as well: a type's tags cannot change at runtime.
func (p *TagProvider) Fields(t reflect.Type) ([]Field, error) {
	t = structType(t)
	if t == nil {
		return nil, nil
	}

	if entry, ok := p.cache.Get(t); ok {
		return entry.fields, entry.err
	}

	fields, err := p.describe(t)
	p.cache.Put(t, descriptor{fields: fields, err: err})
	return fields, err
}

func (p *TagProvider) describe(t reflect.Type) ([]Field, error) {
	fields := make([]Field, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		// Skip unexported fields and markers
		if !sf.IsExported() || sf.Type == constraint.MarkerType {
			continue
		}

		tag := sf.Tag.Get(p.tagName)
		if tag == "-" {
			continue
		}

		levels, err := parseTag(tag)
		if err != nil {
			return nil, &constraint.ConfigError{
				Type:   t.String(),
				Field:  sf.Name,
				Err:    constraint.ErrMalformedTag,
				Detail: err.Error(),
			}
		}

		site, err := buildSite(sf.Type, levels, "field", 0)
		if err != nil {
			if ce, ok := constraint.AsConfigError(err); ok {
				ce.Type = t.String()
				ce.Field = sf.Name
				return nil, ce
			}
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}

		fields = append(fields, Field{
			Name:  sf.Name,
			Index: i,
			Tag:   tag,
			Site:  site,
		})
	}

	return fields, nil
}

// Value returns v's field f. v must be a struct value.
func (p *TagProvider) Value(v reflect.Value, f Field) reflect.Value {
	return v.Field(f.Index)
}

// MarkerCount counts fields of type constraint.Marker, embedded or blank.
func (p *TagProvider) MarkerCount(t reflect.Type) int {
	t = structType(t)
	if t == nil {
		return 0
	}

	n := 0
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Type == constraint.MarkerType {
			n++
		}
	}
	return n
}

// Len returns the number of cached types.
func (p *TagProvider) Len() int {
	return p.cache.Len()
}

// Reset drops all cached descriptors.
func (p *TagProvider) Reset() {
	p.cache.Clear()
}

// structType dereferences pointers and returns nil for non-struct types.
func structType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return t
}
