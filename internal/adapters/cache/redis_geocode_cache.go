package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/obs"
	redisclient "wastewise-admin-service/internal/platform/redis"
)

// RedisGeocodeCache maps normalised addresses to coordinates, one key per address.
type RedisGeocodeCache struct {
	client *redisclient.Client
	ttl    time.Duration
}

func NewRedisGeocodeCache(client *redisclient.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

// Fetch cached coordinates for the given addresses.
func (c *RedisGeocodeCache) GetMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.cache.GetMany")(&err)

	if c.client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	uniq := uniqueNonEmpty(addresses)
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	keys := make([]string, len(uniq))
	for i, a := range uniq {
		keys[i] = c.client.GeocodeKey(a)
	}

	vals, err := c.client.MGet(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: mget: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var coords domain.Coordinates
		if err := json.Unmarshal([]byte(s), &coords); err != nil {
			return nil, fmt.Errorf("get geocode cache: decode %q: %w", uniq[i], err)
		}
		out[uniq[i]] = coords
	}
	return out, nil
}

// Store many geocoded addresses.
func (c *RedisGeocodeCache) PutMany(
	ctx context.Context,
	coords map[string]domain.Coordinates,
) error {
	if c.client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	for addr, coord := range coords {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("insert geocode cache: empty address key")
		}
		b, err := json.Marshal(coord)
		if err != nil {
			return fmt.Errorf("insert geocode cache address=%q: %w", addr, err)
		}
		if err := c.client.Set(ctx, c.client.GeocodeKey(addr), string(b), c.ttl); err != nil {
			return fmt.Errorf("insert geocode cache address=%q: %w", addr, err)
		}
	}
	return nil
}
