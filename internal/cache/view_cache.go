package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ViewCache is a JSON-backed Redis cache bound to a view type T. A zero TTL
// stores keys without expiry.
type ViewCache[T any] struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
	log    *zap.Logger
}

func NewViewCache[T any](client redis.Cmdable, prefix string, ttl time.Duration, log *zap.Logger) *ViewCache[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &ViewCache[T]{client: client, ttl: ttl, prefix: prefix, log: log}
}

// Get returns (nil, false) on a miss or an undecodable entry.
func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("view cache read failed", zap.String("key", c.prefix+key), zap.Error(err))
		}
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		c.log.Warn("view cache entry undecodable", zap.String("key", c.prefix+key), zap.Error(err))
		return nil, false
	}
	return &v, true
}

// Set stores value under key. Write failures are logged, not returned.
func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("view cache marshal failed", zap.String("key", c.prefix+key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		c.log.Warn("view cache write failed", zap.String("key", c.prefix+key), zap.Error(err))
	}
}

func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		c.log.Warn("view cache delete failed", zap.String("key", c.prefix+key), zap.Error(err))
	}
}
