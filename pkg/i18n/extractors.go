package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// maxLangCodeLength is the maximum allowed length for a language code
const maxLangCodeLength = 35 // RFC 5646 recommends 35 characters max

// LangExtractor extracts the preferred language code from a request.
// An empty result lets the middleware apply its default.
type LangExtractor func(r *http.Request) string

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages sets the list of supported languages for validation
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks the query parameter ("lang" by default) and
// then the Accept-Language header. With supported languages configured,
// only codes that match one of them are returned.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{QueryParamName: "lang"}
	for _, opt := range opts {
		opt(config)
	}

	return func(r *http.Request) string {
		if lang := r.URL.Query().Get(config.QueryParamName); lang != "" {
			if normalized := NormalizeLanguage(lang, config.SupportedLangs); normalized != "" {
				return normalized
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(config.SupportedLangs) > 0 {
			return ParseAcceptLanguage(header, config.SupportedLangs, "")
		}
		if len(header) > maxAcceptLanguageLength {
			header = header[:maxAcceptLanguageLength]
		}
		tags, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(tags) == 0 {
			return ""
		}
		return strings.ToLower(tags[0].String())
	}
}
