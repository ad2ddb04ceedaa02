package services

import (
	"context"
	"fmt"
	"strings"

	"wastewise-admin-service/internal/domain"
)

type ZoneInput struct {
	ID           string
	Name         string
	AreaCoverage string
}

func (in ZoneInput) apply(z *domain.Zone) error {
	errs := fieldErrors{}
	z.Name = required(errs, "name", in.Name)
	z.AreaCoverage = strings.TrimSpace(in.AreaCoverage)
	return errs.err()
}

func (s *RecordService) ListZones(ctx context.Context) ([]*domain.Zone, error) {
	zones, err := s.repos.Zones.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	return zones, nil
}

func (s *RecordService) GetZone(ctx context.Context, id string) (*domain.Zone, error) {
	z, err := s.repos.Zones.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "zone", id)
	}
	return z, nil
}

func (s *RecordService) CreateZone(ctx context.Context, in ZoneInput) (*domain.Zone, error) {
	z := &domain.Zone{ID: s.idOrNew(in.ID)}
	if err := in.apply(z); err != nil {
		return nil, err
	}
	z.CreatedAt = s.now()
	z.UpdatedAt = z.CreatedAt
	if err := s.repos.Zones.Create(ctx, z); err != nil {
		return nil, repoError(err, "zone", z.ID)
	}
	return z, nil
}

func (s *RecordService) UpdateZone(ctx context.Context, id string, in ZoneInput) (*domain.Zone, error) {
	z, err := s.GetZone(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(z); err != nil {
		return nil, err
	}
	z.UpdatedAt = s.now()
	if err := s.repos.Zones.Update(ctx, z); err != nil {
		return nil, repoError(err, "zone", id)
	}
	return z, nil
}

// DeleteZone removes only the zone. Its routes stay and show up as unassigned.
func (s *RecordService) DeleteZone(ctx context.Context, id string) error {
	return repoError(s.repos.Zones.DeleteByID(ctx, id), "zone", id)
}
