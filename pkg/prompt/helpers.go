package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
)

// Int reads whole numbers until one lies inside [low, high] (inside) or
// strictly outside it. Input that does not parse as an integer counts as an
// invalid attempt.
func Int(ctx context.Context, src Source, low, high int, inside bool, opts ...Option) (int, error) {
	msg := fmt.Sprintf("Enter a whole number between %d and %d.", low, high)
	if !inside {
		msg = fmt.Sprintf("Enter a whole number less than %d or greater than %d.", low, high)
	}
	return Loop(ctx, src, func(raw string) (inputcheck.Result[int], error) {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return inputcheck.Invalid[int](), nil
		}
		return inputcheck.CheckRange(n, low, high, inside), nil
	}, withDefaultMessage(msg, opts)...)
}

// NumberString reads digit strings until one is valid in base and, unless
// length is inputcheck.AnyLength, has exactly length characters. An empty
// line counts as an invalid attempt; an unknown base ends the loop with
// inputcheck.ErrUnknownBase.
func NumberString(ctx context.Context, src Source, base inputcheck.Base, length int, opts ...Option) (string, error) {
	if !base.Valid() {
		return "", fmt.Errorf("%w: %d", inputcheck.ErrUnknownBase, int(base))
	}
	var msg string
	switch {
	case base == inputcheck.NotANumber && length == inputcheck.AnyLength:
		msg = "Enter a non-empty value."
	case base == inputcheck.NotANumber:
		msg = fmt.Sprintf("Enter exactly %d characters.", length)
	case length == inputcheck.AnyLength:
		msg = fmt.Sprintf("Enter a %s number.", base)
	default:
		msg = fmt.Sprintf("Enter a %s number of %d characters.", base, length)
	}
	return Loop(ctx, src, func(raw string) (inputcheck.Result[string], error) {
		if raw == "" {
			return inputcheck.Invalid[string](), nil
		}
		return inputcheck.CheckNumber(raw, length, base)
	}, withDefaultMessage(msg, opts)...)
}

// Text reads lines until one satisfies the casing mode. An empty line counts
// as an invalid attempt; an unknown mode ends the loop with
// inputcheck.ErrUnknownCasingMode.
func Text(ctx context.Context, src Source, mode inputcheck.CasingMode, opts ...Option) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %d", inputcheck.ErrUnknownCasingMode, int(mode))
	}
	msg := fmt.Sprintf("Enter %s letters only (%s).", mode.Script(), mode)
	return Loop(ctx, src, func(raw string) (inputcheck.Result[string], error) {
		if raw == "" {
			return inputcheck.Invalid[string](), nil
		}
		return inputcheck.CheckCasing(raw, mode)
	}, withDefaultMessage(msg, opts)...)
}

// Pattern reads lines until one fully matches the named pattern.
func Pattern(ctx context.Context, src Source, name inputcheck.PatternName, opts ...Option) (string, error) {
	re, ok := inputcheck.Pattern(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", inputcheck.ErrUnknownPattern, name)
	}
	msg := fmt.Sprintf("Enter a valid %s.", name)
	return Loop(ctx, src, func(raw string) (inputcheck.Result[string], error) {
		if re.MatchString(raw) {
			return inputcheck.Valid(raw), nil
		}
		return inputcheck.Invalid[string](), nil
	}, withDefaultMessage(msg, opts)...)
}

// withDefaultMessage puts msg before opts so a caller's WithMessage wins.
func withDefaultMessage(msg string, opts []Option) []Option {
	return append([]Option{WithMessage(msg)}, opts...)
}
