package repositories

import (
	"context"

	"wastewise-admin-service/internal/domain"

	"gorm.io/gorm"
)

// GORM-backed implementation of the WorkerRepository port.
type GormWorkerRepository struct{ t table[workerModel] }

func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{t: table[workerModel]{db: db, name: "worker"}}
}

func (r *GormWorkerRepository) List(ctx context.Context) ([]*domain.Worker, error) {
	rows, err := r.t.list(ctx, "")
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*workerModel).toDomain), nil
}

func (r *GormWorkerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	row, err := r.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *GormWorkerRepository) Create(ctx context.Context, w *domain.Worker) error {
	m := workerFromDomain(w)
	if err := r.t.create(ctx, w.ID, m); err != nil {
		return err
	}
	w.CreatedAt, w.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *GormWorkerRepository) Update(ctx context.Context, w *domain.Worker) error {
	return r.t.update(ctx, w.ID, workerFromDomain(w))
}

func (r *GormWorkerRepository) DeleteByID(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}
