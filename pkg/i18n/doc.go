// Package i18n translates validation and prompt messages.
//
// Translations are nested YAML maps keyed by language code at the top level
// and addressed with dot-separated keys. Placeholders use the `%{name}`
// syntax and are filled from key, value argument pairs. Plural keys hold one
// sub-key per CLDR plural form and are resolved with N.
//
// # Architecture
//
// The Translator delegates storage to a TranslationAdapter. MapAdapter serves
// in-memory data and FSAdapter reads every supported file from a directory
// of any fs.FS, usually an embed.FS. Language codes are validated and matched
// with golang.org/x/text/language, so "en-US" in an Accept-Language header
// selects a loaded "en".
//
// # Usage
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, ".")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//
//	tr.T("ru", "validation.range_inside", "low", "1", "high", "10")
//	tr.N("ru", "prompt.attempts_left", 3)
//
// # HTTP Middleware
//
// Middleware stores the negotiated language in the request context, where
// Tc and GetLocale read it:
//
//	extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(tr.SupportedLanguages()...))
//	r.Use(i18n.Middleware(extract, tr.DefaultLanguage()))
//
// # Error Handling
//
// Loading failures wrap sentinel errors such as ErrFailedToParseYAML and
// ErrInvalidLanguageCode; check them with errors.Is. Translation itself never
// fails: a missing key yields the key or an empty string, see WithFallbackToKey.
package i18n
