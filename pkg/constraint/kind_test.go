package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
)

func TestKind(t *testing.T) {
	t.Parallel()

	t.Run("all kinds are valid and named", func(t *testing.T) {
		for _, k := range constraint.Kinds() {
			assert.True(t, k.Valid(), k.String())
			assert.NotContains(t, k.String(), "Kind(")
		}
	})

	t.Run("zero kind is invalid", func(t *testing.T) {
		var k constraint.Kind
		assert.False(t, k.Valid())
		assert.Equal(t, "Kind(0)", k.String())
	})
}

func TestConstraintString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NotNull", constraint.NewNotNull().String())
	assert.Equal(t, "Size(1, 100)", constraint.NewSize(1, 100).String())
	assert.Equal(t, "InRange(-5, 5)", constraint.NewInRange(-5, 5).String())
	assert.Equal(t, `AnyOf("Wifi", "Mini bar")`, constraint.NewAnyOf("Wifi", "Mini bar").String())
}

func TestConstraintHelpers(t *testing.T) {
	t.Parallel()

	t.Run("bounded", func(t *testing.T) {
		assert.True(t, constraint.NewSize(0, 1).Bounded())
		assert.True(t, constraint.NewInRange(0, 1).Bounded())
		assert.False(t, constraint.NewPositive().Bounded())
	})

	t.Run("anyof values are copied", func(t *testing.T) {
		values := []string{"a", "b"}
		c := constraint.NewAnyOf(values...)
		values[0] = "z"
		assert.True(t, c.Contains("a"))
		assert.False(t, c.Contains("z"))
	})

	t.Run("has", func(t *testing.T) {
		cs := []constraint.Constraint{constraint.NewNotNull(), constraint.NewSize(1, 2)}
		assert.True(t, constraint.Has(cs, constraint.Size))
		assert.False(t, constraint.Has(cs, constraint.AnyOf))
		assert.False(t, constraint.Has(nil, constraint.NotNull))
	})
}

func TestMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c      constraint.Constraint
		msg    string
		key    string
		values map[string]any
	}{
		{constraint.NewNotNull(), "must be not null", "validation.not_null", nil},
		{constraint.NewNotBlank(), "must be not blank", "validation.not_blank", nil},
		{constraint.NewNotEmpty(), "must be not empty", "validation.not_empty", nil},
		{constraint.NewPositive(), "must be positive", "validation.positive", nil},
		{constraint.NewNegative(), "must be negative", "validation.negative", nil},
		{
			constraint.NewSize(1, 100),
			"size must be in range between 1 and 100",
			"validation.size",
			map[string]any{"min": int64(1), "max": int64(100)},
		},
		{
			constraint.NewInRange(10, 80),
			"value must be in range between 10 and 80",
			"validation.in_range",
			map[string]any{"min": int64(10), "max": int64(80)},
		},
		{
			constraint.NewAnyOf("Wifi", "TV"),
			`must be one of "Wifi", "TV"`,
			"validation.any_of",
			map[string]any{"values": `"Wifi", "TV"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.c.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.msg, constraint.Message(tt.c))
			assert.Equal(t, tt.key, constraint.TranslationKey(tt.c))
			assert.Equal(t, tt.values, constraint.TranslationValues(tt.c))
		})
	}
}
