package repositories

import (
	"context"

	"wastewise-admin-service/internal/domain"

	"gorm.io/gorm"
)

// GORM-backed implementation of the ZoneRepository port.
type GormZoneRepository struct{ t table[zoneModel] }

func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{t: table[zoneModel]{db: db, name: "zone"}}
}

func (r *GormZoneRepository) List(ctx context.Context) ([]*domain.Zone, error) {
	rows, err := r.t.list(ctx, "")
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*zoneModel).toDomain), nil
}

func (r *GormZoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	row, err := r.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *GormZoneRepository) Create(ctx context.Context, z *domain.Zone) error {
	m := zoneFromDomain(z)
	if err := r.t.create(ctx, z.ID, m); err != nil {
		return err
	}
	z.CreatedAt, z.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *GormZoneRepository) Update(ctx context.Context, z *domain.Zone) error {
	return r.t.update(ctx, z.ID, zoneFromDomain(z))
}

// DeleteByID removes only the zone. Its routes stay and become unassigned.
func (r *GormZoneRepository) DeleteByID(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}
