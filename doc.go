// Package deepvalid validates object graphs declared with struct tags.
//
// A type opts in by embedding Constrained. Every exported field may carry
// constraints for itself and, after "dive", for its elements, map keys and
// map values. Nested constrained types are walked recursively, through
// pointers, interfaces and containers of any list depth.
//
//	type Guest struct {
//		deepvalid.Constrained
//		FirstName *string `validate:"notnull,notblank,size=1:100"`
//		Age       int     `validate:"inrange=10:80"`
//	}
//
//	type Booking struct {
//		deepvalid.Constrained
//		Guests       []*Guest    `validate:"notnull,size=1:5,dive,notnull"`
//		PeopleInRoom map[int]int `validate:"dive,keys,positive,endkeys,inrange=1:3"`
//	}
//
//	violations, err := deepvalid.Validate(booking)
//	if err != nil {
//		// the schema itself is broken: see ConfigError
//	}
//	for _, v := range violations {
//		fmt.Println(v.Path, v.Message) // Guests[2].Age value must be in range between 10 and 80
//	}
//
// # Constraints
//
//	notnull          pointer, slice, map or interface is not nil
//	positive         integer > 0
//	negative         integer < 0
//	notblank         string has a non-whitespace character
//	notempty         string, slice, set or map has at least one entry
//	size=min:max     length of string (in runes), slice, set or map
//	inrange=min:max  integer within bounds, inclusive
//	anyof=a b 'c d'  string equals one of the values
//
// Null values only ever fail notnull. Set is map[K]struct{}; arrays are
// walked as collections with positional "[some index]" paths.
//
// # Engine
//
// Engine bundles a Validator with a slog logger and a translator built from
// config.Config, so violations come back localized:
//
//	engine, err := deepvalid.NewFromEnv(ctx)
//	violations, err := engine.Validate(ctx, booking)
//
// See the pkg/validator, pkg/schema and pkg/i18n packages for the
// underlying building blocks.
package deepvalid
