// Package cache is a thin read-through JSON cache over redis for hot
// GET responses. It is nil-safe and fails open: with no redis client
// every lookup is a miss and writes are no-ops, so the API keeps
// working from the database alone.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	logger "bookstore-api/loggers"
)

const defaultTTL = 5 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New wraps a redis client; a nil client yields a disabled cache.
func New(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

// GetJSON loads a cached value into dest, reporting whether it hit.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Logger.Warn("cache read failed: ", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Logger.Warn("cache entry corrupt, dropping: ", err)
		c.client.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores a value under key for the cache TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Logger.Warn("cache marshal failed: ", err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Logger.Warn("cache write failed: ", err)
	}
}

// Invalidate drops keys after a mutation.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Logger.Warn("cache invalidation failed: ", err)
	}
}
