package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
	"github.com/dmitrymomot/deepvalid/pkg/validator"
)

type nestedGuest struct {
	validator.Constrained
	Age int `validate:"positive,negative"`
}

type holdsBrokenGuest struct {
	validator.Constrained
	Guest *nestedGuest
}

func TestSchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		err   error
		field string
		site  string
	}{
		{"positive on string", struct {
			validator.Constrained
			Name string `validate:"positive"`
		}{}, validator.ErrIllegalConstraint, "Name", "field"},
		{"notblank on int", struct {
			validator.Constrained
			Age int `validate:"notblank"`
		}{}, validator.ErrIllegalConstraint, "Age", "field"},
		{"anyof on list", struct {
			validator.Constrained
			Tags []string `validate:"anyof=a b"`
		}{}, validator.ErrIllegalConstraint, "Tags", "field"},
		{"size on array", struct {
			validator.Constrained
			Slots [2]int `validate:"size=1:2"`
		}{}, validator.ErrIllegalConstraint, "Slots", "field"},
		{"notnull on value type", struct {
			validator.Constrained
			Age int `validate:"notnull"`
		}{}, validator.ErrIllegalConstraint, "Age", "field"},
		{"notnull on array element", struct {
			validator.Constrained
			Slots [2]string `validate:"dive,notnull"`
		}{}, validator.ErrIllegalConstraint, "Slots", "element"},
		{"positive on uint64", struct {
			validator.Constrained
			Big uint64 `validate:"positive"`
		}{}, validator.ErrIllegalConstraint, "Big", "field"},
		{"inrange on float", struct {
			validator.Constrained
			Price float64 `validate:"inrange=1:2"`
		}{}, validator.ErrIllegalConstraint, "Price", "field"},
		{"positive on struct", struct {
			validator.Constrained
			Guest GuestForm `validate:"positive"`
		}{}, validator.ErrIllegalConstraint, "Guest", "field"},
		{"illegal on map key", struct {
			validator.Constrained
			Rooms map[string]int `validate:"dive,keys,positive,endkeys"`
		}{}, validator.ErrIllegalConstraint, "Rooms", "key"},
		{"illegal on nested list", struct {
			validator.Constrained
			Grid [][]string `validate:"dive,dive,positive"`
		}{}, validator.ErrIllegalConstraint, "Grid", "element.element"},
		{"inverted size", struct {
			validator.Constrained
			Name string `validate:"size=5:1"`
		}{}, validator.ErrInvertedBounds, "Name", "field"},
		{"inverted range on element", struct {
			validator.Constrained
			Ages []int `validate:"dive,inrange=80:10"`
		}{}, validator.ErrInvertedBounds, "Ages", "element"},
		{"positive and negative", struct {
			validator.Constrained
			Age int `validate:"positive,negative"`
		}{}, validator.ErrConflictingSign, "Age", "field"},
		{"set of lists", struct {
			validator.Constrained
			Sets map[[2]int]struct{}
		}{}, validator.ErrIllegalNesting, "Sets", "field"},
		{"list of maps", struct {
			validator.Constrained
			Rooms []map[string]int
		}{}, validator.ErrIllegalNesting, "Rooms", "field"},
		{"list of sets inside list", struct {
			validator.Constrained
			Rooms [][]map[string]struct{}
		}{}, validator.ErrIllegalNesting, "Rooms", "element"},
		{"map of lists", struct {
			validator.Constrained
			Rooms map[string][]int
		}{}, validator.ErrIllegalNesting, "Rooms", "field"},
		{"array of slices", struct {
			validator.Constrained
			Rows [2][]int
		}{}, validator.ErrIllegalNesting, "Rows", "field"},
		{"malformed tag", struct {
			validator.Constrained
			Name string `validate:"notblank,unknown"`
		}{}, validator.ErrMalformedTag, "Name", ""},
	}

	v := validator.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations, err := v.Validate(tt.value)
			require.Error(t, err)
			assert.Nil(t, violations)
			assert.ErrorIs(t, err, validator.ErrConfiguration)
			assert.ErrorIs(t, err, tt.err)

			ce, ok := constraint.AsConfigError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, ce.Field)
			assert.Equal(t, tt.site, ce.Site)
		})
	}
}

func TestSchemaErrorsIgnoreValues(t *testing.T) {
	t.Parallel()

	type form struct {
		validator.Constrained
		Name *string `validate:"notnull,size=3:1"`
	}

	v := validator.New()

	_, err := v.Validate(form{})
	assert.ErrorIs(t, err, validator.ErrInvertedBounds)

	_, err = v.Validate(form{Name: ptr("abc")})
	assert.ErrorIs(t, err, validator.ErrInvertedBounds)
}

func TestSchemaErrorInNestedType(t *testing.T) {
	t.Parallel()

	v := validator.New()

	t.Run("reached", func(t *testing.T) {
		violations, err := v.Validate(holdsBrokenGuest{Guest: &nestedGuest{}})
		require.Error(t, err)
		assert.Nil(t, violations)

		ce, ok := constraint.AsConfigError(err)
		require.True(t, ok)
		assert.Contains(t, ce.Type, "nestedGuest")
		assert.ErrorIs(t, err, validator.ErrConflictingSign)
	})

	t.Run("not reached through nil", func(t *testing.T) {
		violations, err := v.Validate(holdsBrokenGuest{})
		require.NoError(t, err)
		assert.Empty(t, violations)
	})
}

func TestMarkerCount(t *testing.T) {
	t.Parallel()

	type twice struct {
		validator.Constrained
		_    constraint.Marker
		Name string `validate:"notblank"`
	}

	_, err := validator.New().Validate(twice{})
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrMarkerCount)
}

func TestDuplicateConstraintsAreKept(t *testing.T) {
	t.Parallel()

	type form struct {
		validator.Constrained
		Name string `validate:"notblank,notblank"`
	}

	violations, err := validator.New().Validate(form{})
	require.NoError(t, err)
	assert.Len(t, violations, 2)
	assert.Equal(t, []string{"Name"}, violations.Paths())
}
