package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid rate limit configuration")
	ErrInvalidTokenCount = errors.New("invalid token count")
	ErrContextCancelled  = errors.New("rate limit check cancelled")
	// ErrStoreUnavailable wraps backend failures such as a lost Redis connection.
	ErrStoreUnavailable = errors.New("rate limit store unavailable")
)
