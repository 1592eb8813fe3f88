package ratelimiter

import (
	"context"
	"time"
)

// Store persists buckets.
type Store interface {
	// ConsumeTokens refills the bucket for key and takes tokens from it if
	// enough are available. It returns what is left, or minus the shortfall
	// when the bucket was short and nothing was taken, together with the
	// time the request would fit.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset forgets the bucket for key.
	Reset(ctx context.Context, key string) error
}
