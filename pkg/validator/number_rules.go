package validator

import (
	"fmt"

	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
)

// NumberString validates a digit string against base and, unless length is
// inputcheck.AnyLength, an exact rune count.
func NumberString(field, value string, length int, base inputcheck.Base) Rule {
	values := map[string]any{
		"field": field,
		"base":  base.String(),
		"radix": int(base),
	}
	var msg, key string
	switch {
	case base == inputcheck.NotANumber && length == inputcheck.AnyLength:
		msg, key = "is required", "validation.required"
	case length == inputcheck.AnyLength:
		msg, key = fmt.Sprintf("must be a %s number", base), "validation.number"
	case base == inputcheck.NotANumber:
		msg, key = fmt.Sprintf("must be exactly %d characters long", length), "validation.length"
		values["length"] = length
	default:
		msg, key = fmt.Sprintf("must be a %s number of %d characters", base, length), "validation.number_length"
		values["length"] = length
	}

	return Rule{
		Check: func() (bool, error) {
			res, err := inputcheck.CheckNumber(value, length, base)
			if err != nil {
				return false, err
			}
			return res.IsValid(), nil
		},
		Error: ValidationError{
			Field:             field,
			Message:           msg,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}

// Binary validates a string of zeros and ones.
func Binary(field, value string) Rule {
	return NumberString(field, value, inputcheck.AnyLength, inputcheck.Binary)
}

// Octal validates a string of digits 0-7.
func Octal(field, value string) Rule {
	return NumberString(field, value, inputcheck.AnyLength, inputcheck.Octal)
}

// Decimal validates a signed decimal integer.
func Decimal(field, value string) Rule {
	return NumberString(field, value, inputcheck.AnyLength, inputcheck.Decimal)
}

// Hexadecimal validates a string of hex digits.
func Hexadecimal(field, value string) Rule {
	return NumberString(field, value, inputcheck.AnyLength, inputcheck.Hexadecimal)
}
