package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wastewise-admin-service/internal/config"
	"wastewise-admin-service/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

const (
	keyNamespace   = "ww"
	sessionPrefix  = "session"
	consolePrefix  = "console"
	statsPrefix    = "stats"
	geocodePrefix  = "geocode"
	distancePrefix = "distance"
)

var errNotInitialized = errors.New("redis client not initialized")

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	MGet(context.Context, ...string) *redis.SliceCmd
	Incr(context.Context, string) *redis.IntCmd
	Expire(context.Context, string, time.Duration) *redis.BoolCmd
	Del(context.Context, ...string) *redis.IntCmd
	HSet(context.Context, string, ...any) *redis.IntCmd
	HMGet(context.Context, string, ...string) *redis.SliceCmd
}

// Client wraps the redis helpers used by sessions, console state and caches.
type Client struct {
	store cmdable
	raw   *redis.Client
}

// New bootstraps a Redis client with pooling/timeouts and verifies connectivity.
func New(ctx context.Context, cfg config.RedisConfig, logg *logger.Logger) (*Client, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	if logg != nil {
		logg.Info(logg.WithField(ctx, "addr", opts.Addr), "redis connection established")
	}
	return &Client{store: raw, raw: raw}, nil
}

// Wrap adopts an existing go-redis client. Tests use it with miniredis.
func Wrap(raw *redis.Client) *Client {
	return &Client{store: raw, raw: raw}
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.DB == 0 {
		opts.DB = cfg.DB
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil || c.store == nil {
		return errNotInitialized
	}
	return c.store.Set(ctx, key, value, ttl).Err()
}

// Get returns redis.Nil when the key does not exist.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	if c == nil || c.store == nil {
		return "", errNotInitialized
	}
	return c.store.Get(ctx, key).Result()
}

// MGet returns one entry per key. Missing keys come back as nil.
func (c *Client) MGet(ctx context.Context, keys ...string) ([]any, error) {
	if c == nil || c.store == nil {
		return nil, errNotInitialized
	}
	if len(keys) == 0 {
		return []any{}, nil
	}
	return c.store.MGet(ctx, keys...).Result()
}

func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	if c == nil || c.store == nil {
		return 0, errNotInitialized
	}
	return c.store.Incr(ctx, key).Result()
}

func (c *Client) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if c == nil || c.store == nil {
		return errNotInitialized
	}
	return c.store.Expire(ctx, key, ttl).Err()
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	if c == nil || c.store == nil {
		return errNotInitialized
	}
	if len(keys) == 0 {
		return nil
	}
	return c.store.Del(ctx, keys...).Err()
}

// HSet writes field/value pairs into the hash at key.
func (c *Client) HSet(ctx context.Context, key string, values map[string]any) error {
	if c == nil || c.store == nil {
		return errNotInitialized
	}
	if len(values) == 0 {
		return nil
	}
	return c.store.HSet(ctx, key, values).Err()
}

// HMGet returns one entry per field. Missing fields come back as nil.
func (c *Client) HMGet(ctx context.Context, key string, fields ...string) ([]any, error) {
	if c == nil || c.store == nil {
		return nil, errNotInitialized
	}
	if len(fields) == 0 {
		return []any{}, nil
	}
	return c.store.HMGet(ctx, key, fields...).Result()
}

func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.store == nil {
		return errNotInitialized
	}
	return c.store.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if c == nil || c.raw == nil {
		return nil
	}
	return c.raw.Close()
}

// SessionKey is where the login session for an access token id lives.
func (c *Client) SessionKey(accessID string) string {
	return c.buildKey(sessionPrefix, accessID)
}

// ConsoleKey is where the admin console state for a session lives.
func (c *Client) ConsoleKey(accessID string) string {
	return c.buildKey(consolePrefix, accessID)
}

func (c *Client) StatsKey(parts ...string) string {
	return c.buildKey(append([]string{statsPrefix}, parts...)...)
}

func (c *Client) GeocodeKey(address string) string {
	return c.buildKey(geocodePrefix, address)
}

func (c *Client) DistanceKey(origin string) string {
	return c.buildKey(distancePrefix, origin)
}

func (c *Client) buildKey(parts ...string) string {
	clean := []string{keyNamespace}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		clean = append(clean, part)
	}
	return strings.Join(clean, ":")
}
