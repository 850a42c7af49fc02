package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
)

// catalogCache is a best-effort Redis read-through cache for catalog and
// registry listings. Every key embeds the catalog version, so bumping the
// version invalidates all of them at once. A nil client disables caching.
type catalogCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func newCatalogCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *catalogCache {
	return &catalogCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *catalogCache) version(ctx context.Context) int64 {
	if c.rdb == nil {
		return 0
	}
	v, err := c.rdb.Get(ctx, config.CacheKey.CatalogVersionKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Msg("read catalog version")
	}
	return v
}

func (c *catalogCache) bump(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, config.CacheKey.CatalogVersionKey()).Err(); err != nil {
		c.log.Error().Err(err).Msg("bump catalog version")
	}
}

// get reports whether key was found and decoded into dst.
func (c *catalogCache) get(ctx context.Context, key string, dst any) bool {
	if c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache decode")
		return false
	}
	return true
}

func (c *catalogCache) set(ctx context.Context, key string, v any) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write")
	}
}
