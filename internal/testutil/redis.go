// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// RedisImage is the image started when no external server is configured.
const RedisImage = "redis:7-alpine"

// RedisURL returns a connection URL for a disposable Redis server.
// INPUTCHECK_TEST_REDIS_URL wins when set; otherwise a container is started
// and terminated on cleanup. The test is skipped when Docker is unavailable.
func RedisURL(t *testing.T) string {
	t.Helper()

	if url := os.Getenv("INPUTCHECK_TEST_REDIS_URL"); url != "" {
		return url
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcredis.Run(ctx, RedisImage)
	testcontainers.CleanupContainer(t, container)
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}

	url, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get redis connection string: %v", err)
	}
	return url
}

// RedisClient returns a pinged client for the server from RedisURL.
func RedisClient(t *testing.T) *redis.Client {
	t.Helper()

	opts, err := redis.ParseURL(RedisURL(t))
	if err != nil {
		t.Fatalf("failed to parse redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("failed to ping redis: %v", err)
	}
	return client
}
