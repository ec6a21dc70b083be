package i18n_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deepvalid/pkg/constraint"
	"github.com/dmitrymomot/deepvalid/pkg/i18n"
)

func TestNewDefault(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewDefault(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en"}, tr.SupportedLanguages())

	t.Run("every constraint key is translated", func(t *testing.T) {
		for _, lang := range tr.SupportedLanguages() {
			for _, k := range constraint.Kinds() {
				key := constraint.TranslationKey(constraint.Constraint{Kind: k})
				assert.True(t, tr.HasTranslation(lang, key), "%s: %s", lang, key)
			}
		}
	})

	t.Run("english matches the fixed messages", func(t *testing.T) {
		for _, c := range []constraint.Constraint{
			constraint.NewNotNull(),
			constraint.NewNotBlank(),
			constraint.NewNotEmpty(),
			constraint.NewPositive(),
			constraint.NewNegative(),
			constraint.NewSize(1, 5),
			constraint.NewInRange(10, 80),
			constraint.NewAnyOf("TV", "Kitchen"),
		} {
			var args []string
			for name, val := range constraint.TranslationValues(c) {
				args = append(args, name, fmt.Sprint(val))
			}
			assert.Equal(t, constraint.Message(c), tr.T("en", constraint.TranslationKey(c), args...))
		}
	})

	t.Run("german", func(t *testing.T) {
		assert.Equal(t, "Größe muss zwischen 1 und 5 liegen", tr.T("de-DE", "validation.size", "min", "1", "max", "5"))
	})
}
