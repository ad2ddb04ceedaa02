package repositories

import (
	"context"

	"wastewise-admin-service/internal/domain"

	"gorm.io/gorm"
)

// GORM-backed implementation of the AssignmentRepository port.
type GormAssignmentRepository struct{ t table[assignmentModel] }

func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{t: table[assignmentModel]{db: db, name: "assignment"}}
}

func (r *GormAssignmentRepository) List(ctx context.Context) ([]*domain.Assignment, error) {
	rows, err := r.t.list(ctx, "")
	if err != nil {
		return nil, err
	}
	return mapRows(rows, (*assignmentModel).toDomain), nil
}

func (r *GormAssignmentRepository) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	row, err := r.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *GormAssignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	m := assignmentFromDomain(a)
	if err := r.t.create(ctx, a.ID, m); err != nil {
		return err
	}
	a.CreatedAt, a.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *GormAssignmentRepository) Update(ctx context.Context, a *domain.Assignment) error {
	return r.t.update(ctx, a.ID, assignmentFromDomain(a))
}

func (r *GormAssignmentRepository) DeleteByID(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}
