package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns a client for the Redis server named by TEST_REDIS_URL
// (e.g. redis://localhost:6379/15). The database is flushed before the test
// so keys from earlier runs cannot leak in.
//
// The test is skipped automatically if TEST_REDIS_URL is not set.
func NewRedis(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set; skipping integration test")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("testutil.NewRedis: parse url: %v", err)
	}
	client := redis.NewClient(opts)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedis: ping: %v", err)
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedis: flush: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return client
}
