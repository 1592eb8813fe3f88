package validator

import (
	"fmt"

	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
)

// MatchesRegex validates that the whole value matches pattern.
// Compiles the pattern on each check; a malformed pattern is a contract error.
func MatchesRegex(field, value string, pattern string, description string) Rule {
	return Rule{
		Check: func() (bool, error) {
			return inputcheck.MatchString(value, pattern)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     pattern,
				"description": description,
			},
		},
	}
}

// MatchesPattern validates the whole value against a built-in pattern.
func MatchesPattern(field, value string, name inputcheck.PatternName) Rule {
	return Rule{
		Check: func() (bool, error) {
			return inputcheck.MatchNamed(value, name)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid %s", name),
			TranslationKey: "validation.pattern." + string(name),
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": string(name),
			},
		},
	}
}
