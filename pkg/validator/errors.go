package validator

import "github.com/dmitrymomot/deepvalid/pkg/constraint"

// ConfigError describes a schema defect. See constraint.ConfigError.
type ConfigError = constraint.ConfigError

// Schema defects, re-exported so callers need a single import.
var (
	ErrConfiguration     = constraint.ErrConfiguration
	ErrIllegalConstraint = constraint.ErrIllegalConstraint
	ErrInvertedBounds    = constraint.ErrInvertedBounds
	ErrConflictingSign   = constraint.ErrConflictingSign
	ErrMarkerCount       = constraint.ErrMarkerCount
	ErrIllegalNesting    = constraint.ErrIllegalNesting
	ErrUnmappedValue     = constraint.ErrUnmappedValue
	ErrMalformedTag      = constraint.ErrMalformedTag
)

// Constrained marks a struct type for deep validation. Embed it once.
type Constrained = constraint.Marker
