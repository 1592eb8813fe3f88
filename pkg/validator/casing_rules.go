package validator

import (
	"fmt"

	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
)

// Casing validates that value uses only letters of the mode's alphabet with
// the mode's casing rule.
func Casing(field, value string, mode inputcheck.CasingMode) Rule {
	return Rule{
		Check: func() (bool, error) {
			res, err := inputcheck.CheckCasing(value, mode)
			if err != nil {
				return false, err
			}
			return res.IsValid(), nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain only %s letters (%s)", mode.Script(), mode),
			TranslationKey: "validation.casing." + mode.String(),
			TranslationValues: map[string]any{
				"field": field,
				"mode":  mode.String(),
			},
		},
	}
}
