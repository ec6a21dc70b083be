package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/deepvalid/pkg/logger"
)

// DefaultLanguage is the language used when no other is requested.
const DefaultLanguage = "en"

// Translator resolves translation keys from loaded catalogs. Requested
// languages are matched against the loaded ones with BCP 47 matching, so
// "de-AT" is served from a "de" catalog.
// A Translator is immutable after construction and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	langs          []string
	matcher        language.Matcher
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.init(translations); err != nil {
		return nil, err
	}

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// init validates the catalogs and builds the language matcher. The default
// language is placed first so it wins when nothing matches.
func (t *Translator) init(trans map[string]map[string]any) error {
	t.translations = trans
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}

	if _, ok := trans[t.defaultLang]; !ok {
		return &ErrLanguageNotSupported{Lang: t.defaultLang}
	}

	langs := make([]string, 0, len(trans))
	for lang, values := range trans {
		if values == nil {
			return fmt.Errorf("%w: nil translations map for language %q", ErrNoTranslations, lang)
		}
		if lang != t.defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	langs = append([]string{t.defaultLang}, langs...)

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidLanguage, lang, err)
		}
		tags = append(tags, tag)
	}

	t.langs = langs
	t.matcher = language.NewMatcher(tags)
	return nil
}

// SupportedLanguages returns the loaded languages, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := slices.Clone(t.langs)
	sort.Strings(langs)
	return langs
}

// DefaultLanguage returns the language used when no preference matches.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match returns the loaded language that best serves the preferences.
// Each preference may be a single tag ("de-AT") or an Accept-Language
// list ("fr-CH, de;q=0.8"). Unparseable preferences are skipped. The
// default language is returned when nothing matches.
func (t *Translator) Match(preferences ...string) string {
	lang, _ := t.Negotiate(preferences...)
	return lang
}

// Negotiate is Match that also reports whether any preference matched a
// loaded language. On false the default language is returned.
func (t *Translator) Negotiate(preferences ...string) (string, bool) {
	if t.matcher == nil {
		return t.defaultLang, false
	}

	var tags []language.Tag
	for _, pref := range preferences {
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang, false
	}

	_, idx, conf := t.matcher.Match(tags...)
	return t.langs[idx], conf != language.No
}

// catalog returns the translations serving lang: an exact catalog if loaded,
// the best match otherwise.
func (t *Translator) catalog(lang string) (map[string]any, bool) {
	if m, ok := t.translations[lang]; ok {
		return m, true
	}

	matched, ok := t.Negotiate(lang)
	if !ok && t.missingLogMode {
		t.logger.Warn("language not supported", slog.String("lang", lang), slog.String("fallback", matched))
	}
	m, found := t.translations[matched]
	return m, found
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "validation.in_range" will traverse m["validation"] then ["in_range"].
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	m, ok := t.catalog(lang)
	if !ok {
		return false
	}
	val, ok := getTranslation(m, key)
	if !ok {
		return false
	}
	_, isString := val.(string)
	return isString
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes %{name} placeholders from key, value argument pairs.
// Unknown placeholders are kept; a trailing odd argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// lookup returns the string stored under key for lang.
func (t *Translator) lookup(lang, key string) (string, error) {
	m, ok := t.catalog(lang)
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}

	val, ok := getTranslation(m, key)
	if !ok {
		return "", fmt.Errorf("translation not found: %s", key)
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("translation %s is %T, not a string", key, val)
	}
	return s, nil
}

// T translates a key for the given language. Arguments are key-value pairs
// substituted into %{name} placeholders.
//
// If the translation is not found and fallbackToKey is true, the key itself is
// returned. Otherwise the result is an empty string.
//
// Example:
//
//	// With translation "validation.size": "size must be in range between %{min} and %{max}"
//	msg := translator.T("en", "validation.size", "min", "1", "max", "5")
//	// Returns: "size must be in range between 1 and 5"
func (t *Translator) T(lang, key string, args ...string) string {
	msg, err := t.lookup(lang, key)
	if err != nil {
		if t.missingLogMode {
			t.logger.Warn("translation missing", slog.String("lang", lang), slog.String("key", key), logger.Error(err))
		}
		if t.fallbackToKey {
			return sprintf(key, args)
		}
		return ""
	}
	return sprintf(msg, args)
}

// Td translates a key with a default fallback if not found
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	msg, err := t.lookup(lang, key)
	if err != nil {
		var notSupported *ErrLanguageNotSupported
		if t.missingLogMode && !errors.As(err, &notSupported) {
			t.logger.Warn("translation missing", slog.String("lang", lang), slog.String("key", key))
		}
		return sprintf(defaultValue, args)
	}
	return sprintf(msg, args)
}

// Tc translates a key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}
