package ratelimiter

import "time"

// Result is the outcome of one Allow call.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left; when denied, minus the shortfall
	ResetAt   time.Time // next refill, or when a denied request would fit
}

// Allowed reports whether the request fit into the bucket.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next request, or 0 when
// the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Config describes a token bucket. The defaults allow bursts of 60 requests
// and refill one token per second.
type Config struct {
	Capacity       int           `env:"INPUTCHECK_RATE_LIMIT_CAPACITY" envDefault:"60"`
	RefillRate     int           `env:"INPUTCHECK_RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"INPUTCHECK_RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
}

// fullRefill is the time an empty bucket needs to fill up again. Stores use
// it as the lifetime of idle buckets.
func (c Config) fullRefill() time.Duration {
	return time.Duration(c.Capacity/c.RefillRate+1) * c.RefillInterval
}

// refill adds the tokens earned since refilledAt. The number of intervals is
// capped so that huge gaps cannot overflow.
func (c Config) refill(tokens int, refilledAt, now time.Time) (int, time.Time) {
	maxIntervals := int64(c.Capacity/c.RefillRate + 1)
	intervals := int(min(int64(now.Sub(refilledAt)/c.RefillInterval), maxIntervals))
	if intervals <= 0 {
		return tokens, refilledAt
	}
	return min(tokens+intervals*c.RefillRate, c.Capacity), now
}

// resetAt returns the next refill after refilledAt. For a denied request
// (negative remaining) it is the refill that covers the shortfall.
func (c Config) resetAt(remaining int, refilledAt time.Time) time.Time {
	intervals := 1
	if remaining < 0 {
		intervals = max((-remaining+c.RefillRate-1)/c.RefillRate, 1)
	}
	return refilledAt.Add(time.Duration(intervals) * c.RefillInterval)
}
