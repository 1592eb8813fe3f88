package validator

import (
	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
)

// Required validates that a string is not empty. Whitespace counts as content.
func Required(field, value string) Rule {
	return Rule{
		Check: check(value != ""),
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Content validates that value classifies as want. Empty input is a
// contract error, not a failure.
func Content(field, value string, want inputcheck.ContentType) Rule {
	return Rule{
		Check: func() (bool, error) {
			got, err := inputcheck.Classify(value)
			if err != nil {
				return false, err
			}
			return got == want, nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be " + contentDescription(want),
			TranslationKey: "validation.content." + want.String(),
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func contentDescription(c inputcheck.ContentType) string {
	switch c {
	case inputcheck.Number:
		return "a number"
	case inputcheck.TextWithNumbers:
		return "text with numbers"
	default:
		return "text without digits"
	}
}
