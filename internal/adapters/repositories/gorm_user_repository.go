package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/ports"

	"gorm.io/gorm"
)

// GORM-backed implementation of the UserRepository port.
type GormUserRepository struct{ t table[userModel] }

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{t: table[userModel]{db: db, name: "user"}}
}

func (r *GormUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row, err := r.t.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

// GetByEmail matches case-insensitively.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	conn, err := r.t.conn(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))

	var row userModel
	if err := conn.Where("LOWER(email) = ?", email).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get user by email: %w", ports.ErrNotFound)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return row.toDomain(), nil
}

func (r *GormUserRepository) Create(ctx context.Context, u *domain.User) error {
	m := userFromDomain(u)
	if err := r.t.create(ctx, u.ID, m); err != nil {
		return err
	}
	u.CreatedAt, u.UpdatedAt = m.CreatedAt, m.UpdatedAt
	return nil
}

func (r *GormUserRepository) UpdateTheme(ctx context.Context, id string, theme domain.Theme) error {
	conn, err := r.t.conn(ctx)
	if err != nil {
		return err
	}
	res := conn.Model(&userModel{}).Where("id = ?", id).Update("theme", string(theme))
	if res.Error != nil {
		return fmt.Errorf("update user %q theme: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update user %q theme: %w", id, ports.ErrNotFound)
	}
	return nil
}
