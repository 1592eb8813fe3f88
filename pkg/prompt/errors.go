package prompt

import "errors"

var (
	// ErrSourceClosed is returned when the input source has no more attempts.
	ErrSourceClosed = errors.New("input source closed")
	// ErrAttemptsExhausted is returned when the attempt limit is reached
	// without a valid input.
	ErrAttemptsExhausted = errors.New("attempts exhausted")
	// ErrNilSource is returned when Loop is called without a source.
	ErrNilSource = errors.New("nil input source")
	// ErrNilChecker is returned when Loop is called without a checker.
	ErrNilChecker = errors.New("nil checker")
)

// ErrWriteMessage is returned when the rejection message cannot be written.
var ErrWriteMessage = errors.New("failed to write prompt message")
