package inputcheck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Script is the writing system a casing mode targets.
type Script int

const (
	Latin Script = iota + 1
	Cyrillic
)

func (s Script) String() string {
	switch s {
	case Latin:
		return "latin"
	case Cyrillic:
		return "cyrillic"
	default:
		return "unknown"
	}
}

// CasingMode selects an alphabet and a casing rule.
type CasingMode int

const (
	// LatinLower accepts only a-z.
	LatinLower CasingMode = iota + 1
	// LatinUpper accepts only A-Z.
	LatinUpper
	// LatinTitle accepts one A-Z letter followed by a-z letters.
	LatinTitle
	// LatinMixed accepts any mix of A-Z and a-z.
	LatinMixed
	// CyrillicLower accepts only а-я and ё.
	CyrillicLower
	// CyrillicUpper accepts only А-Я and Ё.
	CyrillicUpper
	// CyrillicTitle accepts one upper-case Cyrillic letter followed by lower-case ones.
	CyrillicTitle
	// CyrillicMixed accepts any mix of upper and lower-case Cyrillic letters.
	CyrillicMixed
)

type casingRule int

const (
	ruleLower casingRule = iota
	ruleUpper
	ruleTitle
	ruleMixed
)

type casingSpec struct {
	name   string
	legacy string
	script Script
	rule   casingRule
	lower  Alphabet
	upper  Alphabet
}

var casingModes = map[CasingMode]casingSpec{
	LatinLower:    {"latin-lower", "eng", Latin, ruleLower, LowerLatin, UpperLatin},
	LatinUpper:    {"latin-upper", "ENG", Latin, ruleUpper, LowerLatin, UpperLatin},
	LatinTitle:    {"latin-title", "Eng", Latin, ruleTitle, LowerLatin, UpperLatin},
	LatinMixed:    {"latin-mixed", "EnG", Latin, ruleMixed, LowerLatin, UpperLatin},
	CyrillicLower: {"cyrillic-lower", "rus", Cyrillic, ruleLower, LowerCyrillic, UpperCyrillic},
	CyrillicUpper: {"cyrillic-upper", "RUS", Cyrillic, ruleUpper, LowerCyrillic, UpperCyrillic},
	CyrillicTitle: {"cyrillic-title", "Rus", Cyrillic, ruleTitle, LowerCyrillic, UpperCyrillic},
	CyrillicMixed: {"cyrillic-mixed", "RuS", Cyrillic, ruleMixed, LowerCyrillic, UpperCyrillic},
}

// CasingModes returns all modes in declaration order.
func CasingModes() []CasingMode {
	return []CasingMode{
		LatinLower, LatinUpper, LatinTitle, LatinMixed,
		CyrillicLower, CyrillicUpper, CyrillicTitle, CyrillicMixed,
	}
}

func (m CasingMode) String() string {
	if spec, ok := casingModes[m]; ok {
		return spec.name
	}
	return fmt.Sprintf("casing(%d)", int(m))
}

// Valid reports whether m is one of the declared modes.
func (m CasingMode) Valid() bool {
	_, ok := casingModes[m]
	return ok
}

// Script returns the script the mode targets, or 0 for unknown modes.
func (m CasingMode) Script() Script {
	return casingModes[m].script
}

// ParseCasingMode resolves a mode by canonical name ("latin-title") or by
// the short case-sensitive form where the letter casing mirrors the rule:
// "eng", "ENG", "Eng", "EnG", "rus", "RUS", "Rus", "RuS".
func ParseCasingMode(s string) (CasingMode, error) {
	trimmed := strings.TrimSpace(s)
	canonical := strings.ToLower(trimmed)
	for _, m := range CasingModes() {
		spec := casingModes[m]
		if spec.name == canonical || spec.legacy == trimmed {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCasingMode, s)
}

// CheckCasing validates that every rune of s satisfies mode. A single
// upper-case letter passes the title modes. The mixed modes accept any rune
// of the union of the upper and lower alphabets.
func CheckCasing(s string, mode CasingMode) (Result[string], error) {
	spec, ok := casingModes[mode]
	if !ok {
		return Invalid[string](), fmt.Errorf("%w: %d", ErrUnknownCasingMode, int(mode))
	}
	if s == "" {
		return Invalid[string](), ErrEmptyInput
	}

	var valid bool
	switch spec.rule {
	case ruleLower:
		valid = spec.lower.ContainsAll(s)
	case ruleUpper:
		valid = spec.upper.ContainsAll(s)
	case ruleTitle:
		first, size := utf8.DecodeRuneInString(s)
		valid = spec.upper.Contains(first) && spec.lower.ContainsAll(s[size:])
	case ruleMixed:
		valid = true
		for _, r := range s {
			if !spec.lower.Contains(r) && !spec.upper.Contains(r) {
				valid = false
				break
			}
		}
	}
	return resultOf(s, valid), nil
}
