package validator

import (
	"fmt"

	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
)

// InRange validates that low <= value <= high.
func InRange[T Numeric](field string, value, low, high T) Rule {
	return Rule{
		Check: check(inputcheck.InRange(value, low, high).IsValid()),
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", low, high),
			TranslationKey: "validation.range_inside",
			TranslationValues: map[string]any{
				"field": field,
				"low":   low,
				"high":  high,
			},
		},
	}
}

// OutOfRange validates that value lies strictly outside [low, high].
func OutOfRange[T Numeric](field string, value, low, high T) Rule {
	return Rule{
		Check: check(inputcheck.OutOfRange(value, low, high).IsValid()),
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be less than %v or greater than %v", low, high),
			TranslationKey: "validation.range_outside",
			TranslationValues: map[string]any{
				"field": field,
				"low":   low,
				"high":  high,
			},
		},
	}
}

// Range picks InRange or OutOfRange depending on inside.
func Range[T Numeric](field string, value, low, high T, inside bool) Rule {
	if inside {
		return InRange(field, value, low, high)
	}
	return OutOfRange(field, value, low, high)
}

// RangeOf is Range for dynamically typed values. value, low and high must
// share one numeric type; a mismatch is reported as inputcheck.ErrUnsupportedType.
func RangeOf(field string, value, low, high any, inside bool) Rule {
	key, message := "validation.range_inside", fmt.Sprintf("must be between %v and %v", low, high)
	if !inside {
		key, message = "validation.range_outside", fmt.Sprintf("must be less than %v or greater than %v", low, high)
	}
	return Rule{
		Check: func() (bool, error) {
			res, err := inputcheck.CheckRangeOf(value, low, high, inside)
			if err != nil {
				return false, err
			}
			return res.IsValid(), nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
				"low":   low,
				"high":  high,
			},
		},
	}
}
