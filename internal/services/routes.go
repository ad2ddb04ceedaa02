package services

import (
	"context"
	"fmt"
	"strings"

	"wastewise-admin-service/internal/domain"
)

type RouteInput struct {
	ID            string
	ZoneID        string
	Name          string
	PathDetails   string
	EstimatedTime string
}

func (in RouteInput) apply(r *domain.Route) error {
	errs := fieldErrors{}
	r.ZoneID = required(errs, "zoneId", in.ZoneID)
	r.Name = required(errs, "name", in.Name)
	r.PathDetails = strings.TrimSpace(in.PathDetails)
	r.EstimatedTime = strings.TrimSpace(in.EstimatedTime)
	return errs.err()
}

func (s *RecordService) ListRoutes(ctx context.Context) ([]*domain.Route, error) {
	routes, err := s.repos.Routes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

func (s *RecordService) GetRoute(ctx context.Context, id string) (*domain.Route, error) {
	r, err := s.repos.Routes.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "route", id)
	}
	return r, nil
}

// CreateRoute does not require the zone to exist; routes of a missing zone are
// reported as unassigned.
func (s *RecordService) CreateRoute(ctx context.Context, in RouteInput) (*domain.Route, error) {
	r := &domain.Route{ID: s.idOrNew(in.ID)}
	if err := in.apply(r); err != nil {
		return nil, err
	}
	r.CreatedAt = s.now()
	r.UpdatedAt = r.CreatedAt
	if err := s.repos.Routes.Create(ctx, r); err != nil {
		return nil, repoError(err, "route", r.ID)
	}
	return r, nil
}

func (s *RecordService) UpdateRoute(ctx context.Context, id string, in RouteInput) (*domain.Route, error) {
	r, err := s.GetRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(r); err != nil {
		return nil, err
	}
	return r, s.saveRoute(ctx, r)
}

func (s *RecordService) saveRoute(ctx context.Context, r *domain.Route) error {
	r.UpdatedAt = s.now()
	if err := s.repos.Routes.Update(ctx, r); err != nil {
		return repoError(err, "route", r.ID)
	}
	return nil
}

func (s *RecordService) DeleteRoute(ctx context.Context, id string) error {
	return repoError(s.repos.Routes.DeleteByID(ctx, id), "route", id)
}
