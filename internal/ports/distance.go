package ports

import (
	"context"
	"errors"
	"fmt"
)

// DistanceResult is one measured leg between two collection stops.
type DistanceResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// DistanceProvider measures the drive between two stop addresses.
type DistanceProvider interface {
	GetDistance(ctx context.Context, origin string, destination string) (DistanceResult, error)
}

// DistanceMatrixProvider is implemented by providers that can measure one
// origin against many stops in a single call. Results are keyed by stop.
type DistanceMatrixProvider interface {
	DistanceProvider
	GetDistances(ctx context.Context, origin string, destinations []string) (map[string]DistanceResult, error)
}

var (
	// ErrUnknownStop means a stop address could not be geocoded.
	ErrUnknownStop = errors.New("collection stop could not be geocoded")
	// ErrUnreachableStop means no drivable path reaches a stop.
	ErrUnreachableStop = errors.New("collection stop is unreachable")
)

// StopError ties ErrUnknownStop or ErrUnreachableStop to the offending stop.
type StopError struct {
	Stop string
	Err  error
}

func (e *StopError) Error() string { return fmt.Sprintf("%v: %q", e.Err, e.Stop) }

func (e *StopError) Unwrap() error { return e.Err }
