package inputcheck

import "fmt"

// Numeric is the set of types accepted by the range checker.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// CheckRange validates value against the closed interval [low, high].
// With inside set the value must lie in the interval, otherwise it must lie
// strictly outside of it. NaN satisfies neither.
func CheckRange[T Numeric](value, low, high T, inside bool) Result[T] {
	if inside {
		return resultOf(value, value >= low && value <= high)
	}
	return resultOf(value, value < low || value > high)
}

// InRange is CheckRange with inside set.
func InRange[T Numeric](value, low, high T) Result[T] {
	return CheckRange(value, low, high, true)
}

// OutOfRange is CheckRange with inside unset.
func OutOfRange[T Numeric](value, low, high T) Result[T] {
	return CheckRange(value, low, high, false)
}

// CheckRangeOf is the dynamically typed entry point for callers holding
// values as any. value, low and high must share the same built-in numeric
// type; anything else is ErrUnsupportedType.
func CheckRangeOf(value, low, high any, inside bool) (Result[any], error) {
	switch v := value.(type) {
	case int:
		return dynamicRange(v, low, high, inside)
	case int8:
		return dynamicRange(v, low, high, inside)
	case int16:
		return dynamicRange(v, low, high, inside)
	case int32:
		return dynamicRange(v, low, high, inside)
	case int64:
		return dynamicRange(v, low, high, inside)
	case uint:
		return dynamicRange(v, low, high, inside)
	case uint8:
		return dynamicRange(v, low, high, inside)
	case uint16:
		return dynamicRange(v, low, high, inside)
	case uint32:
		return dynamicRange(v, low, high, inside)
	case uint64:
		return dynamicRange(v, low, high, inside)
	case float32:
		return dynamicRange(v, low, high, inside)
	case float64:
		return dynamicRange(v, low, high, inside)
	}
	return Invalid[any](), fmt.Errorf("%w: %T", ErrUnsupportedType, value)
}

func dynamicRange[T Numeric](value T, low, high any, inside bool) (Result[any], error) {
	lo, ok := low.(T)
	if !ok {
		return Invalid[any](), fmt.Errorf("%w: low bound %T does not match value %T", ErrUnsupportedType, low, value)
	}
	hi, ok := high.(T)
	if !ok {
		return Invalid[any](), fmt.Errorf("%w: high bound %T does not match value %T", ErrUnsupportedType, high, value)
	}
	if CheckRange(value, lo, hi, inside).IsValid() {
		return Valid[any](value), nil
	}
	return Invalid[any](), nil
}
