// Package ratelimiter implements token bucket rate limiting with in-memory
// and Redis stores plus an HTTP middleware.
//
// A bucket holds up to Capacity tokens and earns RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds the
// bucket empty is denied without taking anything, so a client is allowed
// again as soon as the Retry-After delay has passed.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.Use(clientip.Middleware(false))
//	r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP()))
//
// Use NewRedisStore when several instances must share the limits. The
// bucket update runs as a Lua script, so concurrent instances never lose
// tokens.
package ratelimiter
