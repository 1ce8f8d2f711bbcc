package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kaito/ideahub/internal/pkg/logger"
)

// Cache is a small JSON cache over Redis. A nil *Cache is valid and behaves
// as a permanent miss, so callers need no enabled checks.
type Cache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// New connects to Redis and returns a cache handle. An empty addr disables
// caching and returns nil without error.
func New(addr, password string, db int, ttl time.Duration) (*Cache, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Cache{rdb: rdb, ttl: ttl}, nil
}

// Get unmarshals the cached value for key into dest. Returns false on a miss
// or any Redis error; errors are logged, not propagated, so the caller falls
// through to the database.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			logger.Warn().Err(err).Str("key", key).Msg("Redis get failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Failed to decode cached value")
		return false
	}
	return true
}

// Set stores a value under key with the configured TTL. Failures are logged
// and otherwise ignored.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Failed to encode value for cache")
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Redis set failed")
	}
}

// Invalidate removes keys from the cache.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.Warn().Err(err).Msg("Redis del failed")
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
