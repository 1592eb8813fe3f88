package inputcheck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Base is the numeral system a digit string is checked against.
type Base int

const (
	NotANumber  Base = 0
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// AnyLength disables the length constraint of CheckNumber.
const AnyLength = -1

func (b Base) String() string {
	switch b {
	case NotANumber:
		return "not-a-number"
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return fmt.Sprintf("base(%d)", int(b))
	}
}

// Valid reports whether b is one of the known bases.
func (b Base) Valid() bool {
	switch b {
	case NotANumber, Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// ParseBase resolves a base from its name, short name or radix ("hex", "16").
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not-a-number", "nan", "any", "0":
		return NotANumber, nil
	case "binary", "bin", "2":
		return Binary, nil
	case "octal", "oct", "8":
		return Octal, nil
	case "decimal", "dec", "10":
		return Decimal, nil
	case "hexadecimal", "hex", "16":
		return Hexadecimal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBase, s)
}

// IsBinary reports whether s is a non-empty string of '0' and '1'.
func IsBinary(s string) bool {
	return allRunes(s, func(r rune) bool { return r == '0' || r == '1' })
}

// IsOctal reports whether s is a non-empty string of digits '0'-'7'.
func IsOctal(s string) bool {
	return allRunes(s, func(r rune) bool { return r >= '0' && r <= '7' })
}

// IsDecimal reports whether s is a non-empty decimal integer with an
// optional leading sign. A sign alone is rejected.
func IsDecimal(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return allRunes(s, isDigit)
}

// IsHexadecimal reports whether s is a non-empty string of hex digits in either case.
func IsHexadecimal(s string) bool {
	return allRunes(s, isHexDigit)
}

// IsBase dispatches to the predicate for base. NotANumber accepts any
// non-empty string.
func IsBase(s string, base Base) (bool, error) {
	switch base {
	case NotANumber:
		return s != "", nil
	case Binary:
		return IsBinary(s), nil
	case Octal:
		return IsOctal(s), nil
	case Decimal:
		return IsDecimal(s), nil
	case Hexadecimal:
		return IsHexadecimal(s), nil
	}
	return false, fmt.Errorf("%w: %d", ErrUnknownBase, int(base))
}

// CheckNumber validates s against an exact rune length (or AnyLength) and
// then against base. The length check runs first so an over-long string is
// invalid even if its digits are fine.
func CheckNumber(s string, length int, base Base) (Result[string], error) {
	if s == "" {
		return Invalid[string](), ErrEmptyInput
	}
	if !base.Valid() {
		return Invalid[string](), fmt.Errorf("%w: %d", ErrUnknownBase, int(base))
	}
	if length != AnyLength && utf8.RuneCountInString(s) != length {
		return Invalid[string](), nil
	}

	ok, err := IsBase(s, base)
	if err != nil {
		return Invalid[string](), err
	}
	return resultOf(s, ok), nil
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func allRunes(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
