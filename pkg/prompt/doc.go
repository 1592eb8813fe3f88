// Package prompt asks for input repeatedly until it passes a check.
//
// Loop reads one attempt at a time from a Source, runs a Checker on it and
// returns the first valid value. Invalid attempts produce a message on the
// error output and another read. Errors are never retried: a checker error
// (such as inputcheck.ErrUnknownBase), a source error, ErrSourceClosed and
// context cancellation all end the loop.
//
// Sources are injectable. NewLineSource reads lines from any io.Reader and
// honours context cancellation while blocked; SourceFunc adapts a function,
// which is convenient in tests.
//
// # Usage
//
//	src := prompt.NewLineSource(os.Stdin)
//	age, err := prompt.Int(ctx, src, 18, 120, true,
//		prompt.WithErrorOutput(os.Stderr),
//		prompt.WithMaxAttempts(3),
//		prompt.WithTranslation(tr, "ru", "validation.range_inside", "low", "18", "high", "120"),
//	)
//	switch {
//	case errors.Is(err, prompt.ErrAttemptsExhausted):
//		// too many invalid answers
//	case errors.Is(err, prompt.ErrSourceClosed), errors.Is(err, context.Canceled):
//		// input ended or the user interrupted
//	}
//
// Int, NumberString, Text and Pattern wrap Loop with the checks of package
// inputcheck. They treat an unparsable number or an empty line as an invalid
// attempt rather than an error.
//
// Every run gets a random session id that is attached to its log records.
package prompt
