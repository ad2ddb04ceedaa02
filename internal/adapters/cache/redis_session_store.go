package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redisclient "wastewise-admin-service/internal/platform/redis"

	redislib "github.com/redis/go-redis/v9"
)

// RedisSessionStore maps access token ids to user ids for the session TTL.
type RedisSessionStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redisclient.Client, ttl time.Duration) (*RedisSessionStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &RedisSessionStore{client: client, ttl: ttl}, nil
}

func (s *RedisSessionStore) Create(ctx context.Context, accessID, userID string) error {
	if strings.TrimSpace(accessID) == "" {
		return fmt.Errorf("access id is required")
	}
	return s.client.Set(ctx, s.client.SessionKey(accessID), userID, s.ttl)
}

// HasSession reports whether accessID still has a live session.
func (s *RedisSessionStore) HasSession(ctx context.Context, accessID string) (bool, error) {
	if strings.TrimSpace(accessID) == "" {
		return false, fmt.Errorf("access id is required")
	}
	if _, err := s.client.Get(ctx, s.client.SessionKey(accessID)); err != nil {
		if errors.Is(err, redislib.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return fmt.Errorf("access id is required")
	}
	return s.client.Del(ctx, s.client.SessionKey(accessID))
}
