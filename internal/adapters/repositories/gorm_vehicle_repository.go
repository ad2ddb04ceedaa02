package repositories

import (
	"context"

	"wastewise-admin-service/internal/domain"

	"gorm.io/gorm"
)

// GORM-backed implementation of the VehicleRepository port.
type GormVehicleRepository struct{ t table[vehicleModel] }

func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{t: table[vehicleModel]{db: db, name: "vehicle"}}
}

func (r *GormVehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	rows, err := r.t.list(ctx, "")
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*vehicleModel).toDomain), nil
}

func (r *GormVehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	row, err := r.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *GormVehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := vehicleFromDomain(v)
	if err := r.t.create(ctx, v.ID, m); err != nil {
		return err
	}
	v.CreatedAt, v.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *GormVehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	return r.t.update(ctx, v.ID, vehicleFromDomain(v))
}

func (r *GormVehicleRepository) DeleteByID(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}
