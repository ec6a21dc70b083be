// Package schema is the type introspection layer of the validator. It turns
// a struct type into an ordered list of field descriptors, each carrying a
// Site tree that records the declared shape of the field and of every nested
// element, map key and map value position, together with the constraints
// attached to each of those positions.
//
// # Architecture
//
// Provider is the contract the validation engine consumes. TagProvider is the
// default implementation: it reads constraints from a struct tag (named
// "validate" unless configured otherwise), builds the Site tree through
// reflection and keeps the result in a bounded LRU cache keyed by
// reflect.Type, so every type is parsed once for the lifetime of the
// provider.
//
// # Tag Grammar
//
//	validate:"notnull,size=1:5,dive,notnull"        // list field + element site
//	validate:"dive,keys,notnull,endkeys,inrange=1:3" // map key and value sites
//	validate:"dive,dive,positive"                   // list of lists
//	validate:"anyof=TV Kitchen 'Living room'"      // quoted values keep spaces
//	validate:"-"                                    // skip the field
//
// Each "dive" moves the following tokens one element level deeper. A
// "keys ... endkeys" block directly after a dive targets map keys.
//
// # Error Handling
//
// Malformed tags and impossible dives are reported as
// *constraint.ConfigError wrapping constraint.ErrMalformedTag. Legality of a
// constraint for its site is not checked here; that is the job of the
// validation engine.
package schema
