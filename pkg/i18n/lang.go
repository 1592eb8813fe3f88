package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the Accept-Language header that is parsed.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the supported language that best serves an
// Accept-Language header, honouring quality values. Regional variants match
// their base language (en-US selects en). defaultLang is returned when the
// header is empty, malformed or matches nothing.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}
	return match(desired, supportedLangs, defaultLang)
}

// NormalizeLanguage returns the canonical supported code for lang, or an
// empty string when lang is malformed or has no supported match.
func NormalizeLanguage(lang string, supportedLangs []string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	if len(supportedLangs) == 0 {
		return strings.ToLower(tag.String())
	}
	return match([]language.Tag{tag}, supportedLangs, "")
}

func match(desired []language.Tag, supportedLangs []string, defaultLang string) string {
	tags := make([]language.Tag, 0, len(supportedLangs))
	codes := make([]string, 0, len(supportedLangs))
	for _, code := range supportedLangs {
		if tag, err := language.Parse(code); err == nil {
			tags = append(tags, tag)
			codes = append(codes, code)
		}
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return defaultLang
	}
	return codes[idx]
}
