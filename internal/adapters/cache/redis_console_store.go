package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wastewise-admin-service/internal/domain"
	redisclient "wastewise-admin-service/internal/platform/redis"

	redislib "github.com/redis/go-redis/v9"
)

// RedisConsoleStore keeps admin console state as JSON for as long as the session lives.
type RedisConsoleStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

func NewRedisConsoleStore(client *redisclient.Client, ttl time.Duration) *RedisConsoleStore {
	return &RedisConsoleStore{client: client, ttl: ttl}
}

func (s *RedisConsoleStore) Load(ctx context.Context, accessID string) (domain.ConsoleState, error) {
	raw, err := s.client.Get(ctx, s.client.ConsoleKey(accessID))
	if errors.Is(err, redislib.Nil) {
		return domain.NewConsoleState(), nil
	}
	if err != nil {
		return domain.ConsoleState{}, fmt.Errorf("load console state: %w", err)
	}

	var state domain.ConsoleState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return domain.ConsoleState{}, fmt.Errorf("load console state: decode: %w", err)
	}
	state.View = domain.ParseView(string(state.View))
	return state, nil
}

func (s *RedisConsoleStore) Save(ctx context.Context, accessID string, state domain.ConsoleState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("save console state: encode: %w", err)
	}
	if err := s.client.Set(ctx, s.client.ConsoleKey(accessID), string(b), s.ttl); err != nil {
		return fmt.Errorf("save console state: %w", err)
	}
	return nil
}

func (s *RedisConsoleStore) Delete(ctx context.Context, accessID string) error {
	if err := s.client.Del(ctx, s.client.ConsoleKey(accessID)); err != nil {
		return fmt.Errorf("delete console state: %w", err)
	}
	return nil
}
