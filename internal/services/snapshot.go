package services

import (
	"context"
	"fmt"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/obs"
	"wastewise-admin-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// UnknownWorker is shown for assignments whose worker no longer exists.
const UnknownWorker = "Unknown"

// Snapshot is every collection the admin console reads, loaded at one point in time.
type Snapshot struct {
	Workers     []*domain.Worker
	Zones       []*domain.Zone
	Routes      []*domain.Route
	Vehicles    []*domain.Vehicle
	Logs        []*domain.CollectionLog
	Assignments []*domain.Assignment
}

// LoadSnapshot reads the six collections concurrently. The first failure cancels the rest.
func LoadSnapshot(ctx context.Context, repos ports.Repositories) (_ *Snapshot, err error) {
	defer obs.Time(ctx, "snapshot.Load")(&err)

	var s Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		s.Workers, err = repos.Workers.List(ctx)
		return wrapList("workers", err)
	})
	g.Go(func() (err error) {
		s.Zones, err = repos.Zones.List(ctx)
		return wrapList("zones", err)
	})
	g.Go(func() (err error) {
		s.Routes, err = repos.Routes.List(ctx)
		return wrapList("routes", err)
	})
	g.Go(func() (err error) {
		s.Vehicles, err = repos.Vehicles.List(ctx)
		return wrapList("vehicles", err)
	})
	g.Go(func() (err error) {
		s.Logs, err = repos.Logs.List(ctx)
		return wrapList("collection logs", err)
	})
	g.Go(func() (err error) {
		s.Assignments, err = repos.Assignments.List(ctx)
		return wrapList("assignments", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}

func wrapList(what string, err error) error {
	if err != nil {
		return fmt.Errorf("load snapshot: list %s: %w", what, err)
	}
	return nil
}

// WorkerName returns the worker's name, or UnknownWorker.
func (s *Snapshot) WorkerName(id string) string {
	for _, w := range s.Workers {
		if w.ID == id {
			return w.Name
		}
	}
	return UnknownWorker
}

// RoutesByZoneID returns the zone's routes in storage order.
func (s *Snapshot) RoutesByZoneID(zoneID string) []*domain.Route {
	out := []*domain.Route{}
	for _, r := range s.Routes {
		if r.ZoneID == zoneID {
			out = append(out, r)
		}
	}
	return out
}
