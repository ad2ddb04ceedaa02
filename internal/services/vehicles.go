package services

import (
	"context"
	"fmt"
	"strings"

	"wastewise-admin-service/internal/domain"

	"github.com/shopspring/decimal"
)

type VehicleInput struct {
	ID                 string
	RegistrationNumber string
	Type               string
	CapacityKg         decimal.Decimal
	Status             string
}

func (in VehicleInput) apply(v *domain.Vehicle) error {
	errs := fieldErrors{}
	v.RegistrationNumber = strings.ToUpper(required(errs, "registrationNumber", in.RegistrationNumber))
	v.Type = strings.TrimSpace(in.Type)
	v.CapacityKg = in.CapacityKg.Round(2)
	if v.CapacityKg.IsNegative() {
		errs.add("capacityKg", "must not be negative")
	}
	v.Status = domain.VehicleStatus(strings.TrimSpace(in.Status))
	if v.Status == "" {
		v.Status = domain.VehicleAvailable
	}
	if !v.Status.IsValid() {
		errs.add("status", "must be one of available, in_use, maintenance")
	}
	return errs.err()
}

func (s *RecordService) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	vehicles, err := s.repos.Vehicles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *RecordService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	v, err := s.repos.Vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "vehicle", id)
	}
	return v, nil
}

func (s *RecordService) CreateVehicle(ctx context.Context, in VehicleInput) (*domain.Vehicle, error) {
	v := &domain.Vehicle{ID: s.idOrNew(in.ID)}
	if err := in.apply(v); err != nil {
		return nil, err
	}
	v.CreatedAt = s.now()
	v.UpdatedAt = v.CreatedAt
	if err := s.repos.Vehicles.Create(ctx, v); err != nil {
		return nil, repoError(err, "vehicle", v.ID)
	}
	return v, nil
}

func (s *RecordService) UpdateVehicle(ctx context.Context, id string, in VehicleInput) (*domain.Vehicle, error) {
	v, err := s.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(v); err != nil {
		return nil, err
	}
	v.UpdatedAt = s.now()
	if err := s.repos.Vehicles.Update(ctx, v); err != nil {
		return nil, repoError(err, "vehicle", id)
	}
	return v, nil
}

func (s *RecordService) DeleteVehicle(ctx context.Context, id string) error {
	return repoError(s.repos.Vehicles.DeleteByID(ctx, id), "vehicle", id)
}
