package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputcheck/internal/testutil"
	"github.com/dmitrymomot/inputcheck/pkg/ratelimiter"
)

func TestRedisStore(t *testing.T) {
	client := testutil.RedisClient(t)
	ctx := context.Background()

	newRedisBucket := func(t *testing.T, cfg ratelimiter.Config) *ratelimiter.Bucket {
		t.Helper()
		store := ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix("inputcheck:test:"+uuid.NewString()+":"))
		b, err := ratelimiter.NewBucket(store, cfg)
		require.NoError(t, err)
		return b
	}

	t.Run("burst then deny then reset", func(t *testing.T) {
		b := newRedisBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute})

		for _, want := range []bool{true, true, false} {
			res, err := b.Allow(ctx, "client")
			require.NoError(t, err)
			assert.Equal(t, want, res.Allowed())
		}

		require.NoError(t, b.Reset(ctx, "client"))
		res, err := b.Status(ctx, "client")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("denied requests take nothing", func(t *testing.T) {
		b := newRedisBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 2, RefillInterval: time.Second})

		var last *ratelimiter.Result
		for range 200 {
			res, err := b.Allow(ctx, "client")
			require.NoError(t, err)
			last = res
		}
		require.False(t, last.Allowed())
		assert.Equal(t, -1, last.Remaining)
		assert.LessOrEqual(t, last.RetryAfter(), time.Second)

		time.Sleep(1100 * time.Millisecond)
		res, err := b.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, res.Allowed(), "allowed after one full refill")
		assert.Equal(t, 1, res.Remaining)
	})

	t.Run("reset covers the shortfall", func(t *testing.T) {
		b := newRedisBucket(t, ratelimiter.Config{Capacity: 4, RefillRate: 1, RefillInterval: time.Minute})

		_, err := b.AllowN(ctx, "client", 4)
		require.NoError(t, err)
		res, err := b.AllowN(ctx, "client", 3)
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.InDelta(t, (3 * time.Minute).Seconds(), res.RetryAfter().Seconds(), 2)
	})
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	store := ratelimiter.NewRedisStore(client)
	_, _, err := store.ConsumeTokens(context.Background(), "k", 1, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = store.ConsumeTokens(ctx, "k", 1, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	assert.ErrorIs(t, err, ratelimiter.ErrContextCancelled)
}
