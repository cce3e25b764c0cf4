package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/retodia/retodia-backend/internal/platform/envutil"
	"github.com/retodia/retodia-backend/internal/platform/logger"
)

// ErrMiss is returned when a key is absent. Callers fall through to the
// database; cache errors must never fail a request.
var ErrMiss = errors.New("cache miss")

// Cache is a small JSON read-through cache. A nil *Cache is valid and
// behaves as an always-miss cache, so callers need no nil checks at sites
// where redis is optional.
type Cache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewCache(log *logger.Logger) (*Cache, error) {
	addr := envutil.Str("REDIS_ADDR", "")
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: envutil.Str("REDIS_PASSWORD", ""),
		DB:       envutil.Int("REDIS_DB", 0),
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Cache{
		log: log.With("client", "RedisCache"),
		rdb: rdb,
		ttl: envutil.Seconds("REDIS_CACHE_TTL_SECONDS", 300),
	}, nil
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	if c == nil {
		return ErrMiss
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return ErrMiss
	}
	if err != nil {
		c.log.Warn("cache get failed", "key", key, "error", err)
		return ErrMiss
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("cache entry corrupt, dropping", "key", key, "error", err)
		_ = c.rdb.Del(ctx, key).Err()
		return ErrMiss
	}
	return nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, val any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "key", key, "error", err)
	}
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache del failed", "keys", keys, "error", err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
