package validator

import (
	"strconv"
	"strings"
)

const pathDelimiter = "/"

type segmentKind uint8

const (
	segmentField segmentKind = iota
	segmentIndex
	segmentElement
	segmentKey
	segmentValue
)

// Segment is one step of a violation path.
type Segment struct {
	kind  segmentKind
	name  string
	index int
}

// FieldSegment names a struct field.
func FieldSegment(name string) Segment {
	return Segment{kind: segmentField, name: name}
}

// IndexSegment is a list position.
func IndexSegment(i int) Segment {
	return Segment{kind: segmentIndex, index: i}
}

// ElementSegment marks an element of a set or collection, which has no
// stable position.
func ElementSegment() Segment {
	return Segment{kind: segmentElement}
}

// KeySegment marks a map key.
func KeySegment() Segment {
	return Segment{kind: segmentKey}
}

// ValueSegment marks a map value.
func ValueSegment() Segment {
	return Segment{kind: segmentValue}
}

func (s Segment) String() string {
	switch s.kind {
	case segmentIndex:
		return "[" + strconv.Itoa(s.index) + "]"
	case segmentElement:
		return "[some index]"
	case segmentKey:
		return "[some key index]"
	case segmentValue:
		return "[some value index]"
	default:
		return s.name
	}
}

// Path is a stack of segments. The zero value is an empty path.
type Path struct {
	segments []Segment
}

func (p *Path) Push(s Segment) {
	p.segments = append(p.segments, s)
}

// Pop removes the most recently pushed segment. It reports false on an
// empty path.
func (p *Path) Pop() (Segment, bool) {
	if len(p.segments) == 0 {
		return Segment{}, false
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	return last, true
}

func (p *Path) Len() int {
	return len(p.segments)
}

// Raw returns the delimited form "/a/[0]/b/".
func (p *Path) Raw() string {
	var b strings.Builder
	b.WriteString(pathDelimiter)
	for _, s := range p.segments {
		b.WriteString(s.String())
		b.WriteString(pathDelimiter)
	}
	return b.String()
}

// String returns the canonical display form "a[0].b".
func (p *Path) String() string {
	return TransformPath(p.Raw())
}

// TransformPath converts the delimited form into the display form: the outer
// delimiters are stripped, a delimiter before a bracketed segment is dropped
// and the remaining delimiters become dots.
//
//	/age/[1]/       -> age[1]
//	/name/[0]/[1]/  -> name[0][1]
//	/name/[0]/age/  -> name[0].age
func TransformPath(raw string) string {
	if len(raw) < 2 {
		return raw
	}

	p := raw[1 : len(raw)-1]
	p = strings.ReplaceAll(p, pathDelimiter+"[", "[")
	return strings.ReplaceAll(p, pathDelimiter, ".")
}
