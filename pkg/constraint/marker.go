package constraint

import "reflect"

// Marker makes a struct type eligible for deep validation.
// Embed it, or declare it as a blank field, exactly once:
//
//	type Guest struct {
//	    constraint.Marker
//	    Name *string `validate:"notnull,notblank"`
//	}
type Marker struct{}

// MarkerType is the reflect.Type of Marker.
var MarkerType = reflect.TypeFor[Marker]()
