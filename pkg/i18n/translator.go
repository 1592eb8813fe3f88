package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Translator resolves message keys to localized strings. Translations are
// loaded once through a TranslationAdapter and are read-only afterwards.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator creates a Translator and loads its translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// validateTranslations rejects empty maps and codes that are not BCP 47 tags.
func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}

	for lang, translations := range trans {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidLanguageCode, lang, err)
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used by the context helpers when the
// context carries none.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// lookup traverses nested maps using dot-separated keys, so
// "validation.casing.latin-lower" reads m["validation"]["casing"]["latin-lower"].
func lookup(m map[string]any, key string) (any, bool) {
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

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

// HasTranslation checks if a string translation exists for lang and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.message(lang, key)
	return ok
}

// message returns the template for lang and key, logging misses when enabled.
func (t *Translator) message(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := lookup(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	if t.missingLogMode {
		t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
	}
	return "", false
}

// T translates key for lang. Arguments are key, value pairs substituted
// into "%{name}" placeholders:
//
//	// "validation.range_inside": "must be between %{low} and %{high}"
//	tr.T("en", "validation.range_inside", "low", "1", "high", "10")
//
// A missing translation yields the key itself when fallback to key is
// enabled (the default) and an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.message(lang, key); ok {
		return substitute(tmpl, args)
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Td translates key for lang and falls back to defaultValue instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.message(lang, key); ok {
		return substitute(tmpl, args)
	}
	return substitute(defaultValue, args)
}

// N translates a plural key. The CLDR plural form of n in lang selects the
// sub-key (zero, one, two, few, many, other); n == 0 tries "zero" first and
// every form falls back to "other". The count is available as %{count}.
//
//	// attempts_left: {one: "%{count} attempt left", few: ..., many: ..., other: ...}
//	tr.N("ru", "prompt.attempts_left", 3)
func (t *Translator) N(lang, key string, n int, args ...string) string {
	args = append(slices.Clip(args), "count", strconv.Itoa(n))

	candidates := []string{key + "." + pluralForm(lang, n), key + ".other"}
	if n == 0 {
		candidates = append([]string{key + ".zero"}, candidates...)
	}
	for _, k := range candidates {
		if tmpl, ok := t.message(lang, k); ok {
			return substitute(tmpl, args)
		}
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// Tc translates key using the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(LocaleOr(ctx, t.defaultLang), key, args...)
}

// Nc translates a plural key using the language stored in ctx.
func (t *Translator) Nc(ctx context.Context, key string, n int, args ...string) string {
	return t.N(LocaleOr(ctx, t.defaultLang), key, n, args...)
}

func pluralForm(lang string, n int) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return "other"
	}
	if n < 0 {
		n = -n
	}
	switch plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0) {
	case plural.Zero:
		return "zero"
	case plural.One:
		return "one"
	case plural.Two:
		return "two"
	case plural.Few:
		return "few"
	case plural.Many:
		return "many"
	default:
		return "other"
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces "%{name}" placeholders with values from args, given
// as key, value pairs. Unknown placeholders are left untouched and an odd
// trailing argument is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
