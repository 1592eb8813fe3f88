package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputcheck/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	supported := []string{"en", "ru"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact match", "ru", "ru"},
		{"regional variant", "ru-RU", "ru"},
		{"quality order", "fr;q=1.0, ru;q=0.9, en;q=0.5", "ru"},
		{"highest quality wins", "en;q=0.3, ru;q=0.8", "ru"},
		{"nothing supported", "de-CH, fr", "en"},
		{"oversized header", strings.Repeat("x", 5000), "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, supported, "en"))
		})
	}

	assert.Equal(t, "fallback", i18n.ParseAcceptLanguage("ru", nil, "fallback"))
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "ru", i18n.NormalizeLanguage("RU", []string{"en", "ru"}))
	assert.Equal(t, "en", i18n.NormalizeLanguage(" en-GB ", []string{"en", "ru"}))
	assert.Equal(t, "en-us", i18n.NormalizeLanguage("en-US", nil))
	assert.Empty(t, i18n.NormalizeLanguage("", nil))
	assert.Empty(t, i18n.NormalizeLanguage("!!", nil))
	assert.Empty(t, i18n.NormalizeLanguage(strings.Repeat("a", 40), nil))
	assert.Empty(t, i18n.NormalizeLanguage("de", []string{"en", "ru"}))
}

func TestMiddleware(t *testing.T) {
	extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "ru"))

	var got string
	handler := i18n.Middleware(extract, "en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	}))

	tests := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{"default", "/", "", "en"},
		{"accept language", "/", "ru-RU,ru;q=0.9", "ru"},
		{"query wins over header", "/?lang=en", "ru", "en"},
		{"unsupported query ignored", "/?lang=de", "ru", "ru"},
		{"unsupported header", "/", "de", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("custom query parameter and default language", func(t *testing.T) {
		custom := i18n.Middleware(
			i18n.DefaultLangExtractor(i18n.WithQueryParamName("locale"), i18n.WithSupportedLanguages("en", "ru")),
			"ru",
		)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = i18n.GetLocale(r.Context())
		}))

		custom.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?locale=en", nil))
		assert.Equal(t, "en", got)

		custom.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "ru", got)
	})
}
