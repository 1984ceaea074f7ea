// Package cache implements the aggregate cache on Redis, with a no-op
// fallback when Redis is not configured.
package cache

import (
	"context"
	"time"

	"freshmarket/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisCache implements service.AggregateCache on a Redis client.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache is the constructor for redisCache.
func NewRedisCache(client *redis.Client) service.AggregateCache {
	return &redisCache{
		client: client,
	}
}

// Get returns the cached value for key. A missing key is a miss, not an
// error.
func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, errors.Wrap(err, "failed to read cache key")
	}

	return value, true, nil
}

// Set stores value under key for the given TTL.
func (c *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write cache key")
	}

	return nil
}
