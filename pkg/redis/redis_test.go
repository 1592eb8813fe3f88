package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputcheck/internal/testutil"
	"github.com/dmitrymomot/inputcheck/pkg/redis"
)

func TestConnect_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  redis.Config
		want error
	}{
		{
			name: "empty url",
			cfg:  redis.Config{},
			want: redis.ErrEmptyConnectionURL,
		},
		{
			name: "malformed url",
			cfg:  redis.Config{ConnectionURL: "http://localhost:6379"},
			want: redis.ErrFailedToParseRedisConnString,
		},
		{
			name: "unreachable server",
			cfg: redis.Config{
				ConnectionURL:  "redis://127.0.0.1:1/0",
				RetryAttempts:  2,
				RetryInterval:  10 * time.Millisecond,
				ConnectTimeout: time.Second,
			},
			want: redis.ErrRedisNotReady,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := redis.Connect(context.Background(), tt.cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConnect_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := redis.Connect(ctx, redis.Config{
		ConnectionURL: "redis://127.0.0.1:1/0",
		RetryAttempts: 5,
		RetryInterval: time.Hour,
	})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnect_Server(t *testing.T) {
	url := testutil.RedisURL(t)

	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	check := redis.Healthcheck(client)
	assert.NoError(t, check(context.Background()))

	require.NoError(t, client.Close())
	assert.ErrorIs(t, check(context.Background()), redis.ErrHealthcheckFailed)
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, redis.Config{}.Enabled())
	assert.True(t, redis.Config{ConnectionURL: "redis://localhost:6379/0"}.Enabled())
}
