package repositories

import (
	"context"
	"fmt"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/ports"

	"gorm.io/gorm"
)

// GORM-backed implementation of the CollectionLogRepository port.
type GormCollectionLogRepository struct{ t table[collectionLogModel] }

func NewGormCollectionLogRepository(db *gorm.DB) *GormCollectionLogRepository {
	return &GormCollectionLogRepository{t: table[collectionLogModel]{db: db, name: "collection log"}}
}

func (r *GormCollectionLogRepository) List(ctx context.Context) ([]*domain.CollectionLog, error) {
	rows, err := r.t.list(ctx, "")
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*collectionLogModel).toDomain), nil
}

// Find returns logs matching f ordered by start time ascending.
func (r *GormCollectionLogRepository) Find(ctx context.Context, f ports.LogFilter) ([]*domain.CollectionLog, error) {
	conn, err := r.t.conn(ctx)
	if err != nil {
		return nil, err
	}

	q := conn.Model(&collectionLogModel{})
	if f.ZoneID != "" {
		q = q.Where("zone_id = ?", f.ZoneID)
	}
	if f.VehicleID != "" {
		q = q.Where("vehicle_id = ?", f.VehicleID)
	}
	if !f.From.IsZero() {
		q = q.Where("start_time >= ?", f.From.UTC())
	}
	if !f.To.IsZero() {
		q = q.Where("start_time < ?", f.To.UTC())
	}

	var rows []*collectionLogModel
	if err := q.Order("start_time, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find collection logs: %w", err)
	}
	return mapRows(rows, (*collectionLogModel).toDomain), nil
}

func (r *GormCollectionLogRepository) GetByID(ctx context.Context, id string) (*domain.CollectionLog, error) {
	row, err := r.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *GormCollectionLogRepository) Create(ctx context.Context, l *domain.CollectionLog) error {
	m := collectionLogFromDomain(l)
	if err := r.t.create(ctx, l.ID, m); err != nil {
		return err
	}
	l.CreatedAt, l.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *GormCollectionLogRepository) Update(ctx context.Context, l *domain.CollectionLog) error {
	return r.t.update(ctx, l.ID, collectionLogFromDomain(l))
}

func (r *GormCollectionLogRepository) DeleteByID(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}
