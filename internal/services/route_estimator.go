package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wastewise-admin-service/internal/domain"
	apperrors "wastewise-admin-service/internal/platform/errors"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/platform/obs"
	"wastewise-admin-service/internal/ports"
)

type EstimateOptions struct {
	// Optimize reorders the stops after the first by nearest neighbour.
	Optimize      bool
	ReturnToStart bool
	// Apply writes the humanised estimate back to the route.
	Apply    bool
	DepartAt time.Time
}

// RouteEstimator measures a route's stops with a distance provider.
type RouteEstimator struct {
	records  *RecordService
	provider ports.DistanceProvider
	logg     *logger.Logger
	now      func() time.Time
}

// NewRouteEstimator accepts a nil provider; estimates then fail with DEPENDENCY_ERROR.
func NewRouteEstimator(records *RecordService, provider ports.DistanceProvider, logg *logger.Logger) *RouteEstimator {
	if logg == nil {
		logg = logger.Nop()
	}
	return &RouteEstimator{records: records, provider: provider, logg: logg, now: time.Now}
}

func (e *RouteEstimator) Estimate(ctx context.Context, routeID string, opts EstimateOptions) (_ *domain.RouteEstimate, err error) {
	defer obs.Time(ctx, "routes.Estimate")(&err)

	route, err := e.records.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	stops := route.Stops()
	if len(stops) < 2 {
		return nil, validationError("route needs at least two stops to estimate", map[string]any{
			"pathDetails": "separate stops with ->, ;, or |",
			"stops":       len(stops),
		})
	}
	if e.provider == nil {
		return nil, apperrors.New(apperrors.CodeDependency, "route estimation is not configured")
	}

	depart := opts.DepartAt
	if depart.IsZero() {
		depart = e.now()
	}
	depart = depart.UTC()

	path, l, err := e.plan(ctx, stops, opts)
	if err != nil {
		return nil, providerError(err)
	}

	est, err := walk(route.ID, depart, path, l, opts.ReturnToStart)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "distance provider returned incomplete legs")
	}
	est.Optimized = opts.Optimize

	if opts.Apply {
		route.EstimatedTime = est.EstimatedTime
		if err := e.records.saveRoute(ctx, route); err != nil {
			return nil, err
		}
		est.Applied = true
		e.logg.Info(e.logg.WithFields(ctx, map[string]any{
			"route_id":       route.ID,
			"estimated_time": est.EstimatedTime,
		}), "route estimate applied")
	}
	return est, nil
}

// plan returns the visiting order and the legs it needs.
func (e *RouteEstimator) plan(ctx context.Context, stops []string, opts EstimateOptions) ([]string, legs, error) {
	if !opts.Optimize {
		path := stops
		if opts.ReturnToStart {
			path = append(append([]string{}, stops...), stops[0])
		}
		l, err := sequentialLegs(ctx, e.provider, path)
		if err != nil {
			return nil, nil, err
		}
		return stops, l, nil
	}

	unique := uniqueStops(stops)
	l, err := pairwiseLegs(ctx, e.provider, unique)
	if err != nil {
		return nil, nil, err
	}
	order, err := nearestNeighborOrder(unique[0], unique[1:], l)
	if err != nil {
		return nil, nil, err
	}
	return order, l, nil
}

func uniqueStops(stops []string) []string {
	seen := make(map[string]struct{}, len(stops))
	out := make([]string, 0, len(stops))
	for _, s := range stops {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// walk accumulates arrival times along path. The first stop is the departure point.
func walk(routeID string, departAt time.Time, path []string, l legs, returnToStart bool) (*domain.RouteEstimate, error) {
	est := &domain.RouteEstimate{
		RouteID:       routeID,
		DepartAt:      departAt,
		ReturnToStart: returnToStart,
		Stops:         make([]domain.EstimateStop, 0, len(path)+1),
	}

	est.Stops = append(est.Stops, domain.EstimateStop{Address: path[0], ArriveAt: departAt})

	visit := func(from, to string) error {
		r, ok := l.get(from, to)
		if !ok {
			return fmt.Errorf("missing distance from %q to %q", from, to)
		}
		est.TotalDurationSeconds += r.DurationSeconds
		est.TotalDistanceMeters += r.DistanceMeters
		est.Stops = append(est.Stops, domain.EstimateStop{
			Address:         to,
			ArriveAt:        departAt.Add(time.Duration(est.TotalDurationSeconds) * time.Second),
			OffsetSeconds:   est.TotalDurationSeconds,
			DistanceMeters:  r.DistanceMeters,
			DurationSeconds: r.DurationSeconds,
		})
		return nil
	}

	for i := 1; i < len(path); i++ {
		if err := visit(path[i-1], path[i]); err != nil {
			return nil, err
		}
	}
	if returnToStart {
		if err := visit(path[len(path)-1], path[0]); err != nil {
			return nil, err
		}
	}

	est.EstimatedTime = domain.HumanizeMinutes(roundMinutes(est.TotalDurationSeconds))
	return est, nil
}

// roundMinutes rounds to the nearest minute, never below one for a non-empty trip.
func roundMinutes(seconds int) int {
	m := (seconds + 30) / 60
	if m == 0 && seconds > 0 {
		return 1
	}
	return m
}

// providerError separates bad stop addresses, which the client must fix in
// pathDetails, from the provider itself failing.
func providerError(err error) error {
	var se *ports.StopError
	if !errors.As(err, &se) {
		return apperrors.Wrap(apperrors.CodeDependency, err, "distance provider unavailable")
	}
	reason := "unknown"
	if errors.Is(se, ports.ErrUnreachableStop) {
		reason = "unreachable"
	}
	return apperrors.New(apperrors.CodeValidation, se.Err.Error()).WithDetails(map[string]any{
		"stop":   se.Stop,
		"reason": reason,
	})
}
