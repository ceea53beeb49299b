package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// Set SQUARED_TEST_REDIS_URL (e.g. redis://localhost:6379/15) to run
// against a live server.
func testRedis(t *testing.T) *RedisCache {
	t.Helper()
	url := os.Getenv("SQUARED_TEST_REDIS_URL")
	if url == "" {
		t.Skip("SQUARED_TEST_REDIS_URL not set")
	}
	c, err := NewRedisCache(context.Background(), url, "squared-test:")
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() {
		_ = c.Clear(context.Background())
		_ = c.Close()
	})
	return c
}

func TestRedisCache(t *testing.T) {
	c := testRedis(t)
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Fatalf("Get(missing) = %v, %v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("key survived Clear")
	}
}

func TestNewRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "http://nope", ""); err == nil {
		t.Error("NewRedisCache should reject a non-redis URL")
	}
}
