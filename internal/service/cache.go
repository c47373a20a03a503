package service

import (
	"context"
	"encoding/json"
	"time"

	"gameverse-api/pkg/logger"
	"gameverse-api/pkg/redis"
)

// cacheGet loads a cached JSON value into dest. Returns false on a miss, a
// decode failure, or when no cache is configured.
func cacheGet(ctx context.Context, cache *redis.Client, key string, dest interface{}) bool {
	if cache == nil {
		return false
	}

	raw, err := cache.Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// cacheSet stores a JSON-encoded value. Cache failures are logged and
// swallowed: the store remains the source of truth.
func cacheSet(ctx context.Context, cache *redis.Client, log *logger.Logger, key string, value interface{}, ttl time.Duration) {
	if cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, raw, ttl); err != nil {
		log.WithError(err).WithField("key", key).Warn("Failed to cache value")
	}
}

// invalidateLeaderboards drops every cached leaderboard and team-stats view.
// Called after any mutation that can change standings.
func invalidateLeaderboards(ctx context.Context, cache *redis.Client, log *logger.Logger) {
	if cache == nil {
		return
	}

	for _, pattern := range []string{
		cache.KeyBuilder.PatternLeaderboards(),
		cache.KeyBuilder.PatternTeamStats(),
	} {
		if err := cache.InvalidatePattern(ctx, pattern); err != nil {
			log.WithError(err).WithField("pattern", pattern).Warn("Failed to invalidate cache")
		}
	}
}
