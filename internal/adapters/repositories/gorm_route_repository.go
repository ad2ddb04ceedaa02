package repositories

import (
	"context"

	"wastewise-admin-service/internal/domain"

	"gorm.io/gorm"
)

// GORM-backed implementation of the RouteRepository port.
type GormRouteRepository struct{ t table[routeModel] }

func NewGormRouteRepository(db *gorm.DB) *GormRouteRepository {
	return &GormRouteRepository{t: table[routeModel]{db: db, name: "route"}}
}

func (r *GormRouteRepository) List(ctx context.Context) ([]*domain.Route, error) {
	rows, err := r.t.list(ctx, "")
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*routeModel).toDomain), nil
}

// ListByZone returns the zone's routes in storage order.
func (r *GormRouteRepository) ListByZone(ctx context.Context, zoneID string) ([]*domain.Route, error) {
	rows, err := r.t.list(ctx, "zone_id = ?", zoneID)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*routeModel).toDomain), nil
}

func (r *GormRouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	row, err := r.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *GormRouteRepository) Create(ctx context.Context, rt *domain.Route) error {
	m := routeFromDomain(rt)
	if err := r.t.create(ctx, rt.ID, m); err != nil {
		return err
	}
	rt.CreatedAt, rt.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *GormRouteRepository) Update(ctx context.Context, rt *domain.Route) error {
	return r.t.update(ctx, rt.ID, routeFromDomain(rt))
}

func (r *GormRouteRepository) DeleteByID(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}
