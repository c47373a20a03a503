package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gameverse-api/pkg/logger"
)

// Client wraps go-redis with the handful of operations the read-path cache
// needs.
type Client struct {
	rdb        *redis.Client
	KeyBuilder *KeyBuilder
	log        *logger.Logger
}

// Cache key patterns
const (
	KeyLeaderboardOverall  = "leaderboard:overall"
	KeyLeaderboardGame     = "leaderboard:game:%s"
	KeyLeaderboardColleges = "leaderboard:colleges"
	KeyTeamStats           = "team:%s:stats"
)

// TTL constants
const (
	// Leaderboards change only when results are verified, but a short TTL
	// keeps the cache honest if an invalidation is ever missed.
	TTLLeaderboard = 30 * time.Second
	TTLTeamStats   = 1 * time.Minute
)

// NewClient creates a new Redis client
func NewClient(redisURL, environment string, log *logger.Logger) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{
		rdb:        rdb,
		KeyBuilder: NewKeyBuilder(environment),
		log:        log,
	}, nil
}

// Get retrieves a value. A cache miss is returned as redis.Nil.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

// IsCacheMiss reports whether err is a cache miss from Get.
func IsCacheMiss(err error) bool {
	return err == redis.Nil
}

// Set stores a value with an expiration.
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Delete removes keys.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// InvalidatePattern removes every key matching the glob pattern.
func (c *Client) InvalidatePattern(ctx context.Context, pattern string) error {
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys for pattern %s: %w", pattern, err)
	}

	return c.Delete(ctx, keys...)
}

// Health checks the connection.
func (c *Client) Health(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}
