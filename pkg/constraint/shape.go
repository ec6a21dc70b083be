package constraint

// Shape is the declared or runtime shape of a site.
type Shape uint8

const (
	Other Shape = iota
	Byte
	Short
	Integer
	Long
	String
	List
	Set
	Map
	Collection
	Custom
)

var shapeNames = [...]string{
	Other:      "other",
	Byte:       "byte",
	Short:      "short",
	Integer:    "integer",
	Long:       "long",
	String:     "string",
	List:       "list",
	Set:        "set",
	Map:        "map",
	Collection: "collection",
	Custom:     "custom",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Numeric reports whether values of this shape widen to int64.
func (s Shape) Numeric() bool {
	return s >= Byte && s <= Long
}

// Container reports whether the shape holds elements.
func (s Shape) Container() bool {
	return s >= List && s <= Collection
}

// Sized reports whether NotEmpty and Size can measure the shape.
func (s Shape) Sized() bool {
	return s == String || s == List || s == Set || s == Map
}

// Legal reports whether a constraint of kind k may be attached to a site of
// shape s. NotNull legality depends on nullability, not shape, and is always
// reported as legal here.
func Legal(k Kind, s Shape) bool {
	switch k {
	case NotNull:
		return true
	case Positive, Negative, InRange:
		return s.Numeric()
	case NotBlank, AnyOf:
		return s == String
	case NotEmpty, Size:
		return s.Sized()
	default:
		return false
	}
}
