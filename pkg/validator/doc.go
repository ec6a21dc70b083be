// Package validator walks constrained object graphs and collects every
// constraint violation found in them.
//
// A struct type opts in by embedding Constrained exactly once. Constraints
// are attached with the "validate" struct tag and may target the field
// itself, its container elements, or the keys and values of a map:
//
//	type Guest struct {
//	    validator.Constrained
//	    FirstName *string `validate:"notnull,notblank,size=1:100"`
//	    Age       int     `validate:"inrange=10:80"`
//	}
//
//	type Booking struct {
//	    validator.Constrained
//	    Guests    []*Guest       `validate:"notempty,dive,notnull"`
//	    Amenities []string       `validate:"dive,anyof=Wifi TV 'Mini bar'"`
//	    Rooms     map[string]int `validate:"dive,keys,notblank,endkeys,inrange=1:3"`
//	}
//
// # Architecture
//
// Each call creates a walker that owns the path stack and the violation
// accumulator, so a Validator holds no per-call state and is safe for
// concurrent use. For every type the walker first runs the schema checker
// over all constraint sites. The result is memoized per Validator. Field
// values are then dispatched to rules through a table indexed by constraint
// kind and runtime shape.
//
// Rules are plain Rule values built by exported constructors such as
// Positive, NotBlank and Size, so they can also be used directly with Apply:
//
//	err := validator.Apply(
//	    validator.NotBlank("name", name),
//	    validator.InRange("age", age, 18, 99),
//	)
//
// # Error Handling
//
// Two failure classes never mix. A value that fails a constraint becomes a
// Violation in the returned Violations. A defect in the schema, such as
// Positive on a string field or inverted Size bounds, is returned as a
// *ConfigError that unwraps to ErrConfiguration and a specific sentinel.
// Partial results are discarded in that case.
//
//	violations, err := v.Validate(form)
//	if errors.Is(err, validator.ErrConfiguration) {
//	    // fix the struct tags
//	}
//	for _, violation := range violations {
//	    fmt.Println(violation.Path, violation.Message)
//	}
//
// Violations implements error; Check returns it directly when non-empty.
// ExtractViolations and IsViolations recover it from wrapped errors.
package validator
