package ports

import (
	"context"
	"time"

	"wastewise-admin-service/internal/domain"
)

// DistanceCache stores origin->destination results for the distance provider.
type DistanceCache interface {
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]DistanceResult, error)
	PutMany(ctx context.Context, origin string, results map[string]DistanceResult) error
}

// GeocodeCache stores resolved coordinates by normalised address.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, coords map[string]domain.Coordinates) error
}

// SummaryCache holds serialized statistics until the next log mutation.
// Readers take the generation before loading data and write under it, so a
// summary computed before an Invalidate is never served after it.
type SummaryCache interface {
	Generation(ctx context.Context) (string, error)
	// Get returns ok=false on a miss.
	Get(ctx context.Context, generation, key string) (payload []byte, ok bool, err error)
	Put(ctx context.Context, generation, key string, payload []byte, ttl time.Duration) error
	// Invalidate starts a new generation, orphaning every cached summary.
	Invalidate(ctx context.Context) error
}

// SessionStore tracks live login sessions by access token id (JWT jti).
type SessionStore interface {
	Create(ctx context.Context, accessID, userID string) error
	HasSession(ctx context.Context, accessID string) (bool, error)
	Revoke(ctx context.Context, accessID string) error
}

// ConsoleStore persists admin console state per session.
type ConsoleStore interface {
	// Load returns the initial state when nothing is stored.
	Load(ctx context.Context, accessID string) (domain.ConsoleState, error)
	Save(ctx context.Context, accessID string, state domain.ConsoleState) error
	Delete(ctx context.Context, accessID string) error
}
