package i18n

import "context"

type localeContextKey struct{}

// SetLocale stores the language violations should be localized into.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFrom returns the locale stored in ctx, if any.
func LocaleFrom(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(localeContextKey{}).(string)
	return locale, ok && locale != ""
}

// GetLocale returns the locale stored in ctx or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if locale, ok := LocaleFrom(ctx); ok {
		return locale
	}
	return DefaultLanguage
}
