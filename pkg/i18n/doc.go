// Package i18n translates violation messages.
//
// Catalogs are YAML documents keyed by language, with nested keys addressed
// by dot notation:
//
//	en:
//	  validation:
//	    in_range: "value must be in range between %{min} and %{max}"
//
// Placeholders in the form %{name} are substituted from key, value argument
// pairs. English and German catalogs for every validation.* key are embedded
// and served by NewDefault.
//
// # Architecture
//
// A TranslationAdapter supplies catalogs: MapAdapter from memory,
// FileAdapter from a single file and FSAdapter from a directory of any fs.FS.
// Parsing is delegated to a Parser; YAMLParser is the built-in one.
//
// Requested languages are matched against the loaded catalogs with
// golang.org/x/text/language, so "de-AT" and Accept-Language style lists such
// as "fr-CH, de;q=0.8" resolve to the closest catalog. The default language
// serves everything that does not match.
//
// # Usage
//
//	tr, err := i18n.NewDefault(ctx)
//	if err != nil {
//	    return err
//	}
//	msg := tr.T("de", "validation.size", "min", "1", "max", "5")
//	// "Größe muss zwischen 1 und 5 liegen"
//
// Translator satisfies the translator interface of the validator package, so
// violations can be localized in one call:
//
//	localized := violations.Localize(tr, "de-AT")
//
// # Error Handling
//
// Loading failures wrap the package sentinels (ErrFailedToParseYAML,
// ErrFailedToReadFile, ErrInvalidLanguage and others). A default language
// without a catalog is reported as *ErrLanguageNotSupported.
package i18n
