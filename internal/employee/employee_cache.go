package employee

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	LookupKeyPrefix = "employees:lookup:"

	DepartmentsCacheKey = LookupKeyPrefix + "departments"
	PositionsCacheKey   = LookupKeyPrefix + "positions"
	StatisticsCacheKey  = LookupKeyPrefix + "statistics"

	// LookupGenerationKey is bumped on every mutation. Cached values live under
	// "<key>:<generation>", so a load that started before a mutation can only
	// write to a generation nobody reads anymore.
	LookupGenerationKey = LookupKeyPrefix + "gen"

	lookupTTL = 10 * time.Minute
)

// lookupCache fronts the aggregation queries. A nil redis client disables
// caching but concurrent loads are still collapsed.
type lookupCache struct {
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func newLookupCache(rdb *redis.Client, logger *zap.Logger) *lookupCache {
	return &lookupCache{rdb: rdb, sf: &singleflight.Group{}, logger: logger}
}

// generation returns the current cache generation. cacheable is false when
// redis is absent or unreadable.
func (c *lookupCache) generation(ctx context.Context) (gen string, cacheable bool) {
	if c.rdb == nil {
		return "0", false
	}
	gen, err := c.rdb.Get(ctx, LookupGenerationKey).Result()
	switch {
	case err == redis.Nil:
		return "0", true
	case err != nil:
		c.logger.Warn("lookup cache generation read failed", zap.Error(err))
		return "0", false
	}
	return gen, true
}

func cachedLookup[T any](ctx context.Context, c *lookupCache, key string, load func(context.Context) (T, error)) (T, error) {
	gen, cacheable := c.generation(ctx)
	versionedKey := key + ":" + gen

	// 1. Cek Redis
	if cacheable {
		if cached, err := c.rdb.Get(ctx, versionedKey).Result(); err == nil {
			var v T
			if json.Unmarshal([]byte(cached), &v) == nil {
				return v, nil
			}
		} else if err != redis.Nil {
			c.logger.Warn("lookup cache read failed", zap.String("key", versionedKey), zap.Error(err))
		}
	}

	// 2. Singleflight supaya query agregasi tidak jalan berkali-kali.
	// Load tidak ikut batal kalau client pertama disconnect.
	v, err, _ := c.sf.Do(versionedKey, func() (interface{}, error) {
		loadCtx := context.WithoutCancel(ctx)
		res, err := load(loadCtx)
		if err != nil {
			return nil, err
		}

		if cacheable {
			if data, err := json.Marshal(res); err == nil {
				if err := c.rdb.Set(loadCtx, versionedKey, string(data), lookupTTL).Err(); err != nil {
					c.logger.Warn("lookup cache write failed", zap.String("key", versionedKey), zap.Error(err))
				}
			}
		}
		return res, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}

// invalidate moves readers to a fresh generation; old entries expire by TTL.
func (c *lookupCache) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(context.WithoutCancel(ctx), LookupGenerationKey).Err(); err != nil {
		c.logger.Error("failed to invalidate employee lookup cache",
			zap.String("key", LookupGenerationKey),
			zap.Error(err),
		)
	}
}
