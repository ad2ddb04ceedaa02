package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wastewise-admin-service/internal/domain"

	"github.com/shopspring/decimal"
)

type CollectionLogInput struct {
	ID        string
	ZoneID    string
	VehicleID string
	WorkerID  *string
	RouteID   *string
	StartTime time.Time
	EndTime   *time.Time
	WeightKg  decimal.Decimal
}

func optionalID(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func (s *RecordService) applyLog(ctx context.Context, in CollectionLogInput, l *domain.CollectionLog) error {
	errs := fieldErrors{}
	l.ZoneID = required(errs, "zoneId", in.ZoneID)
	l.VehicleID = required(errs, "vehicleId", in.VehicleID)
	l.WorkerID = optionalID(in.WorkerID)
	l.RouteID = optionalID(in.RouteID)
	l.StartTime = in.StartTime.UTC()
	l.EndTime = nil
	if in.EndTime != nil {
		end := in.EndTime.UTC()
		l.EndTime = &end
	}
	l.WeightKg = in.WeightKg.Round(2)

	switch err := l.Validate(); {
	case errors.Is(err, domain.ErrMissingStartTime):
		errs.add("startTime", "is required")
	case errors.Is(err, domain.ErrEndBeforeStart):
		errs.add("endTime", "must not be before startTime")
	case errors.Is(err, domain.ErrNegativeWeight):
		errs.add("weightKg", "must not be negative")
	}

	if err := exists(ctx, errs, "zoneId", l.ZoneID, func(ctx context.Context, id string) error {
		_, err := s.repos.Zones.GetByID(ctx, id)
		return err
	}); err != nil {
		return fmt.Errorf("check zoneId: %w", err)
	}
	if err := exists(ctx, errs, "vehicleId", l.VehicleID, func(ctx context.Context, id string) error {
		_, err := s.repos.Vehicles.GetByID(ctx, id)
		return err
	}); err != nil {
		return fmt.Errorf("check vehicleId: %w", err)
	}
	return errs.err()
}

func (s *RecordService) ListLogs(ctx context.Context) ([]*domain.CollectionLog, error) {
	out, err := s.repos.Logs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collection logs: %w", err)
	}
	return out, nil
}

func (s *RecordService) GetLog(ctx context.Context, id string) (*domain.CollectionLog, error) {
	l, err := s.repos.Logs.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "collection log", id)
	}
	return l, nil
}

// CreateLog requires the zone and vehicle to exist.
func (s *RecordService) CreateLog(ctx context.Context, in CollectionLogInput) (*domain.CollectionLog, error) {
	l := &domain.CollectionLog{ID: s.idOrNew(in.ID)}
	if err := s.applyLog(ctx, in, l); err != nil {
		return nil, err
	}
	l.CreatedAt = s.now()
	l.UpdatedAt = l.CreatedAt
	if err := s.repos.Logs.Create(ctx, l); err != nil {
		return nil, repoError(err, "collection log", l.ID)
	}
	s.logsChanged(ctx)
	return l, nil
}

func (s *RecordService) UpdateLog(ctx context.Context, id string, in CollectionLogInput) (*domain.CollectionLog, error) {
	l, err := s.GetLog(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyLog(ctx, in, l); err != nil {
		return nil, err
	}
	l.UpdatedAt = s.now()
	if err := s.repos.Logs.Update(ctx, l); err != nil {
		return nil, repoError(err, "collection log", id)
	}
	s.logsChanged(ctx)
	return l, nil
}

func (s *RecordService) DeleteLog(ctx context.Context, id string) error {
	if err := s.repos.Logs.DeleteByID(ctx, id); err != nil {
		return repoError(err, "collection log", id)
	}
	s.logsChanged(ctx)
	return nil
}
