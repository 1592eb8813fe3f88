package inputcheck

import "fmt"

// Result is the outcome of a single check. A valid result carries the
// checked value exactly as it was supplied; an invalid one carries nothing.
type Result[T any] struct {
	value T
	valid bool
}

// Valid returns a successful result holding v.
func Valid[T any](v T) Result[T] {
	return Result[T]{value: v, valid: true}
}

// Invalid returns a failed result.
func Invalid[T any]() Result[T] {
	return Result[T]{}
}

func resultOf[T any](v T, ok bool) Result[T] {
	if ok {
		return Valid(v)
	}
	return Invalid[T]()
}

// IsValid reports whether the check passed.
func (r Result[T]) IsValid() bool {
	return r.valid
}

// Value returns the checked value and true, or the zero value and false
// when the check failed.
func (r Result[T]) Value() (T, bool) {
	if !r.valid {
		var zero T
		return zero, false
	}
	return r.value, true
}

// MustValue returns the checked value and panics if the check failed.
func (r Result[T]) MustValue() T {
	if !r.valid {
		panic("inputcheck: value of invalid result")
	}
	return r.value
}

func (r Result[T]) String() string {
	if !r.valid {
		return "invalid"
	}
	return fmt.Sprintf("valid(%v)", r.value)
}
