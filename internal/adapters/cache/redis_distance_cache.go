package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"wastewise-admin-service/internal/platform/obs"
	redisclient "wastewise-admin-service/internal/platform/redis"
	"wastewise-admin-service/internal/ports"
)

// RedisDistanceCache keeps one hash per origin, keyed by destination.
type RedisDistanceCache struct {
	client *redisclient.Client
	ttl    time.Duration
}

type distanceEntry struct {
	Meters  int `json:"m"`
	Seconds int `json:"s"`
}

// NewRedisDistanceCache stores rows for ttl. Zero keeps them forever.
func NewRedisDistanceCache(client *redisclient.Client, ttl time.Duration) *RedisDistanceCache {
	return &RedisDistanceCache{client: client, ttl: ttl}
}

// Fetch cached distances for one origin and multiple destinations.
func (c *RedisDistanceCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "distance.cache.GetMany")(&err)

	if c.client == nil {
		return nil, errors.New("distance cache: redis client is nil")
	}
	if origin == "" {
		return nil, errors.New("get distance cache: origin must not be empty")
	}

	uniq := uniqueNonEmpty(destinations)
	if len(uniq) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	vals, err := c.client.HMGet(ctx, c.client.DistanceKey(origin), uniq...)
	if err != nil {
		return nil, fmt.Errorf("get distance cache: hmget: %w", err)
	}

	out := make(map[string]ports.DistanceResult, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var e distanceEntry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			return nil, fmt.Errorf("get distance cache: decode %q: %w", uniq[i], err)
		}
		out[uniq[i]] = ports.DistanceResult{DistanceMeters: e.Meters, DurationSeconds: e.Seconds}
	}
	return out, nil
}

// Store many cached distance results for a single origin.
func (c *RedisDistanceCache) PutMany(
	ctx context.Context,
	origin string,
	results map[string]ports.DistanceResult,
) error {
	if c.client == nil {
		return errors.New("distance cache: redis client is nil")
	}
	if origin == "" {
		return errors.New("insert distance cache: origin must not be empty")
	}
	if len(results) == 0 {
		return nil
	}

	fields := make(map[string]any, len(results))
	for dest, r := range results {
		if strings.TrimSpace(dest) == "" {
			return fmt.Errorf("insert distance cache: empty destination key")
		}
		b, err := json.Marshal(distanceEntry{Meters: r.DistanceMeters, Seconds: r.DurationSeconds})
		if err != nil {
			return fmt.Errorf("insert distance cache dest=%q: %w", dest, err)
		}
		fields[dest] = string(b)
	}

	key := c.client.DistanceKey(origin)
	if err := c.client.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("insert distance cache: hset: %w", err)
	}
	if c.ttl > 0 {
		if err := c.client.Expire(ctx, key, c.ttl); err != nil {
			return fmt.Errorf("insert distance cache: expire: %w", err)
		}
	}
	return nil
}

func uniqueNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	uniq := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		uniq = append(uniq, v)
	}
	return uniq
}
