package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
)

// Checker validates one raw attempt. An invalid Result asks for another
// attempt; an error ends the loop.
type Checker[T any] func(raw string) (inputcheck.Result[T], error)

// Loop asks src for attempts and runs check on each until one is valid.
//
// After an invalid attempt the rejection message is written to the error
// output and the next attempt is requested. Errors from the source or the
// checker are returned as is, ctx.Err() is returned once ctx is done, and
// ErrAttemptsExhausted is returned when WithMaxAttempts is reached.
func Loop[T any](ctx context.Context, src Source, check Checker[T], opts ...Option) (T, error) {
	var zero T
	if src == nil {
		return zero, ErrNilSource
	}
	if check == nil {
		return zero, ErrNilChecker
	}

	o := newOptions(opts)
	log := o.logger.With(logger.Component("prompt"), logger.SessionID(uuid.NewString()))
	start := time.Now()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			log.DebugContext(ctx, "prompt cancelled", logger.Attempt(attempt), logger.Error(err))
			return zero, err
		}

		raw, err := src.Next(ctx)
		if err != nil {
			log.DebugContext(ctx, "input source failed", logger.Attempt(attempt), logger.Error(err))
			return zero, err
		}

		res, err := check(raw)
		if err != nil {
			log.WarnContext(ctx, "check failed", logger.Attempt(attempt), logger.Error(err))
			return zero, err
		}
		if v, ok := res.Value(); ok {
			log.DebugContext(ctx, "input accepted", logger.Attempt(attempt), logger.Duration(time.Since(start)))
			return v, nil
		}

		left := -1
		if o.maxAttempts > 0 {
			left = o.maxAttempts - attempt
		}
		log.DebugContext(ctx, "input rejected", logger.Attempt(attempt), slog.Int("attempts_left", left))

		if err := o.reject(left); err != nil {
			return zero, err
		}
		if left == 0 {
			return zero, ErrAttemptsExhausted
		}
	}
}

// reject writes the rejection message. left is the number of remaining
// attempts, or -1 when unbounded.
func (o *options) reject(left int) error {
	msg := o.message
	if o.tr != nil {
		msg = o.tr.Td(o.lang, o.key, o.message, o.args...)
	}
	if left >= 0 {
		msg = fmt.Sprintf("%s (%s)", msg, o.attemptsLeft(left))
	}
	if _, err := fmt.Fprintln(o.out, msg); err != nil {
		return errors.Join(ErrWriteMessage, err)
	}
	return nil
}

func (o *options) attemptsLeft(n int) string {
	if o.tr != nil && o.tr.HasTranslation(o.lang, attemptsLeftKey+".other") {
		return o.tr.N(o.lang, attemptsLeftKey, n)
	}
	if n == 1 {
		return "1 attempt left"
	}
	return fmt.Sprintf("%d attempts left", n)
}
