package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deepvalid/pkg/i18n"
	"github.com/dmitrymomot/deepvalid/pkg/logger"
)

func newMapTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"greeting": "Hello, %{name}!",
			"validation": map[string]any{
				"size": "size must be in range between %{min} and %{max}",
			},
			"number": 42,
		},
		"de": {
			"greeting": "Hallo, %{name}!",
		},
		"pt-BR": {
			"greeting": "Olá, %{name}!",
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestTranslatorT(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)

	t.Run("named substitution", func(t *testing.T) {
		assert.Equal(t, "Hello, Anna!", tr.T("en", "greeting", "name", "Anna"))
		assert.Equal(t, "Hallo, Anna!", tr.T("de", "greeting", "name", "Anna"))
	})

	t.Run("nested keys", func(t *testing.T) {
		assert.Equal(t,
			"size must be in range between 1 and 5",
			tr.T("en", "validation.size", "min", "1", "max", "5"))
	})

	t.Run("unknown placeholders and odd arguments are kept", func(t *testing.T) {
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "greeting", "other", "x", "dangling"))
	})

	t.Run("regional tag matches base catalog", func(t *testing.T) {
		assert.Equal(t, "Hallo, Jo!", tr.T("de-AT", "greeting", "name", "Jo"))
		assert.Equal(t, "Olá, Jo!", tr.T("pt-BR", "greeting", "name", "Jo"))
	})

	t.Run("unknown language uses default", func(t *testing.T) {
		assert.Equal(t, "Hello, Jo!", tr.T("ja", "greeting", "name", "Jo"))
	})

	t.Run("missing key falls back to key", func(t *testing.T) {
		assert.Equal(t, "validation.unknown", tr.T("en", "validation.unknown"))
		assert.Equal(t, "validation.size", tr.T("de", "validation.size"))
	})

	t.Run("non-string value falls back to key", func(t *testing.T) {
		assert.Equal(t, "number", tr.T("en", "number"))
		assert.Equal(t, "validation", tr.T("en", "validation"))
	})
}

func TestTranslatorWithoutKeyFallback(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t, i18n.WithFallbackToKey(false))
	assert.Empty(t, tr.T("en", "missing"))
	assert.Equal(t, "Hello, A!", tr.T("en", "greeting", "name", "A"))
}

func TestTranslatorTd(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)
	assert.Equal(t, "Hello, A!", tr.Td("en", "greeting", "fallback", "name", "A"))
	assert.Equal(t, "default A", tr.Td("en", "missing", "default %{name}", "name", "A"))
}

func TestTranslatorTc(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)
	ctx := i18n.SetLocale(context.Background(), "de")
	assert.Equal(t, "Hallo, B!", tr.Tc(ctx, "greeting", "name", "B"))
	assert.Equal(t, "Hello, B!", tr.Tc(context.Background(), "greeting", "name", "B"))

	locale, ok := i18n.LocaleFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "de", locale)

	_, ok = i18n.LocaleFrom(i18n.SetLocale(context.Background(), ""))
	assert.False(t, ok)
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
}

func TestTranslatorMatch(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)

	tests := []struct {
		name  string
		prefs []string
		want  string
	}{
		{"exact", []string{"de"}, "de"},
		{"region", []string{"de-CH"}, "de"},
		{"accept-language list", []string{"fr-CH, fr;q=0.9, de;q=0.8"}, "de"},
		{"several preferences", []string{"ja", "pt-BR"}, "pt-BR"},
		{"no match", []string{"ja"}, "en"},
		{"unparseable", []string{"!!!"}, "en"},
		{"nothing", nil, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.prefs...))
		})
	}
}

func TestTranslatorLanguages(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)
	assert.Equal(t, []string{"de", "en", "pt-BR"}, tr.SupportedLanguages())
	assert.Equal(t, "en", tr.DefaultLanguage())
	assert.True(t, tr.HasTranslation("de", "greeting"))
	assert.True(t, tr.HasTranslation("de-AT", "greeting"))
	assert.False(t, tr.HasTranslation("de", "validation.size"))
	assert.False(t, tr.HasTranslation("en", "validation"))
}

func TestNewTranslatorErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(ctx, nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("default language missing", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"de": {"a": "b"}}}
		_, err := i18n.NewTranslator(ctx, adapter)

		var notSupported *i18n.ErrLanguageNotSupported
		require.True(t, errors.As(err, &notSupported))
		assert.Equal(t, "en", notSupported.Lang)

		tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("de"))
		require.NoError(t, err)
		assert.Equal(t, "b", tr.T("en", "a"))
	})

	t.Run("invalid language tag", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
			"en":          {"a": "b"},
			"not a tag!!": {"a": "c"},
		}}
		_, err := i18n.NewTranslator(ctx, adapter)
		assert.ErrorIs(t, err, i18n.ErrInvalidLanguage)
	})

	t.Run("empty catalogs", func(t *testing.T) {
		tr, err := i18n.NewTranslator(ctx, &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Equal(t, "key", tr.T("en", "key"))
		assert.Equal(t, "en", tr.Match("de"))
	})
}

func TestMissingTranslationsLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	tr := newMapTranslator(t, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true))

	tr.T("en", "missing.key")
	assert.Contains(t, buf.String(), "translation missing")
	assert.Contains(t, buf.String(), "missing.key")
}

func TestTranslatorNegotiate(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)

	lang, ok := tr.Negotiate("de-LU")
	assert.True(t, ok)
	assert.Equal(t, "de", lang)

	lang, ok = tr.Negotiate("ja")
	assert.False(t, ok)
	assert.Equal(t, "en", lang)
}
