package services

import (
	"context"
	"fmt"
	"sync"

	"wastewise-admin-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// maxLegLookups bounds concurrent origin lookups against the distance provider.
const maxLegLookups = 5

// legs maps "origin|destination" to the measured leg.
type legs map[string]ports.DistanceResult

func legKey(from, to string) string { return from + "|" + to }

func (l legs) get(from, to string) (ports.DistanceResult, bool) {
	if from == to {
		return ports.DistanceResult{}, true
	}
	r, ok := l[legKey(from, to)]
	return r, ok
}

// fetchFrom measures origin against targets, batched when the provider supports it.
func fetchFrom(
	ctx context.Context,
	provider ports.DistanceProvider,
	origin string,
	targets []string,
) (map[string]ports.DistanceResult, error) {
	if mp, ok := provider.(ports.DistanceMatrixProvider); ok {
		res, err := mp.GetDistances(ctx, origin, targets)
		if err != nil {
			return nil, fmt.Errorf("get distances from %q: %w", origin, err)
		}
		return res, nil
	}

	res := make(map[string]ports.DistanceResult, len(targets))
	for _, t := range targets {
		if t == origin {
			continue
		}
		r, err := provider.GetDistance(ctx, origin, t)
		if err != nil {
			return nil, fmt.Errorf("get distance from %q to %q: %w", origin, t, err)
		}
		res[t] = r
	}
	return res, nil
}

// pairwiseLegs measures every ordered pair of distinct stops. Origins are
// fetched concurrently; the first failure cancels the rest.
func pairwiseLegs(ctx context.Context, provider ports.DistanceProvider, stops []string) (legs, error) {
	out := make(legs, len(stops)*len(stops))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLegLookups)

	for _, origin := range stops {
		targets := make([]string, 0, len(stops)-1)
		for _, t := range stops {
			if t != origin {
				targets = append(targets, t)
			}
		}
		if len(targets) == 0 {
			continue
		}

		g.Go(func() error {
			res, err := fetchFrom(ctx, provider, origin, targets)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			for _, t := range targets {
				r, ok := res[t]
				if !ok {
					return fmt.Errorf("missing distance from %q to %q", origin, t)
				}
				out[legKey(origin, t)] = r
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// sequentialLegs measures each consecutive pair of the path concurrently.
func sequentialLegs(ctx context.Context, provider ports.DistanceProvider, path []string) (legs, error) {
	out := make(legs, len(path))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLegLookups)

	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		if from == to {
			continue
		}
		g.Go(func() error {
			r, err := provider.GetDistance(ctx, from, to)
			if err != nil {
				return fmt.Errorf("get distance from %q to %q: %w", from, to, err)
			}
			mu.Lock()
			out[legKey(from, to)] = r
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
