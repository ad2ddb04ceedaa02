package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisclient "wastewise-admin-service/internal/platform/redis"

	"github.com/redis/go-redis/v9"
)

// RedisSummaryCache namespaces entries under a generation counter.
// Invalidate bumps the counter, orphaning every older entry until it expires.
type RedisSummaryCache struct {
	client *redisclient.Client
}

func NewRedisSummaryCache(client *redisclient.Client) *RedisSummaryCache {
	return &RedisSummaryCache{client: client}
}

func (c *RedisSummaryCache) Generation(ctx context.Context) (string, error) {
	v, err := c.client.Get(ctx, c.client.StatsKey("generation"))
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	if err != nil {
		return "", fmt.Errorf("summary cache: read generation: %w", err)
	}
	return v, nil
}

func (c *RedisSummaryCache) Get(ctx context.Context, gen, key string) ([]byte, bool, error) {
	v, err := c.client.Get(ctx, c.client.StatsKey("g"+gen, key))
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("summary cache: get %q: %w", key, err)
	}
	return []byte(v), true, nil
}

// Put writes under gen as read by the caller. Entries for a superseded
// generation are never read again.
func (c *RedisSummaryCache) Put(ctx context.Context, gen, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.client.StatsKey("g"+gen, key), string(payload), ttl); err != nil {
		return fmt.Errorf("summary cache: put %q: %w", key, err)
	}
	return nil
}

func (c *RedisSummaryCache) Invalidate(ctx context.Context) error {
	if _, err := c.client.Incr(ctx, c.client.StatsKey("generation")); err != nil {
		return fmt.Errorf("summary cache: invalidate: %w", err)
	}
	return nil
}
