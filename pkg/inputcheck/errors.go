package inputcheck

import "errors"

// Contract violations. Invalid but well-formed input never produces one of these.
var (
	// ErrEmptyInput is returned when an operation that requires content receives an empty string.
	ErrEmptyInput = errors.New("input is empty")

	// ErrUnsupportedType is returned when a value is outside the accepted set of kinds.
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrUnknownCasingMode is returned for casing modes outside the eight known variants.
	ErrUnknownCasingMode = errors.New("unknown casing mode")

	// ErrUnknownBase is returned for numeral bases outside the known set.
	ErrUnknownBase = errors.New("unknown numeric base")

	// ErrUnknownPattern is returned when a named pattern does not exist in the table.
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrInvalidPattern is returned when a pattern literal fails to compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)
