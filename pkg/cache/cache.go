package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const opTimeout = 3 * time.Second

// Cache is a Redis-backed byte cache with a fixed TTL, used in front of
// the brewery directory API. A nil *Cache is valid and caches nothing,
// so callers don't need to branch on whether Redis is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr, password string, ttl time.Duration) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

// Get returns the cached value for key, or ok=false on miss or any
// Redis failure. A cache outage must never fail the request.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores value under key with the cache TTL, best effort.
func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if c == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_ = c.client.Set(ctx, key, value, c.ttl).Err()
}
