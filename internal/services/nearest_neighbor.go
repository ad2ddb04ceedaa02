package services

import (
	"errors"
	"fmt"
	"math"
)

// nearestNeighborOrder orders stops greedily from start by shortest travel time.
//
// Each step picks the closest remaining stop; ties go to the lexicographically
// smaller address so the order is deterministic. It does not attempt global
// optimisation. Duplicate stops and stops equal to start are visited once.
func nearestNeighborOrder(start string, stops []string, l legs) ([]string, error) {
	if start == "" {
		return nil, errors.New("nearest neighbor: start must be non-empty")
	}

	remaining := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		if s != start {
			remaining[s] = struct{}{}
		}
	}

	order := make([]string, 0, len(remaining)+1)
	order = append(order, start)
	current := start

	for len(remaining) > 0 {
		var best string
		minDuration := math.MaxInt

		for d := range remaining {
			r, ok := l.get(current, d)
			if !ok {
				return nil, fmt.Errorf("nearest neighbor: missing distance from %q to %q", current, d)
			}
			if r.DurationSeconds < minDuration || (r.DurationSeconds == minDuration && d < best) {
				minDuration = r.DurationSeconds
				best = d
			}
		}

		order = append(order, best)
		delete(remaining, best)
		current = best
	}
	return order, nil
}
