package repositories

import (
	"context"
	"errors"
	"fmt"

	"wastewise-admin-service/internal/platform/db"
	"wastewise-admin-service/internal/ports"

	"gorm.io/gorm"
)

// table holds the CRUD plumbing shared by every record repository.
type table[M any] struct {
	db   *gorm.DB
	name string
}

func (t table[M]) conn(ctx context.Context) (*gorm.DB, error) {
	if t.db == nil {
		return nil, fmt.Errorf("%s repository: db is nil", t.name)
	}
	return t.db.WithContext(ctx), nil
}

func (t table[M]) list(ctx context.Context, where string, args ...any) ([]*M, error) {
	conn, err := t.conn(ctx)
	if err != nil {
		return nil, err
	}
	q := conn.Order("created_at, id")
	if where != "" {
		q = q.Where(where, args...)
	}
	var rows []*M
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return rows, nil
}

func (t table[M]) get(ctx context.Context, id string) (*M, error) {
	conn, err := t.conn(ctx)
	if err != nil {
		return nil, err
	}
	var row M
	if err := conn.Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get %s %q: %w", t.name, id, ports.ErrNotFound)
		}
		return nil, fmt.Errorf("get %s %q: %w", t.name, id, err)
	}
	return &row, nil
}

func (t table[M]) create(ctx context.Context, id string, row *M) error {
	conn, err := t.conn(ctx)
	if err != nil {
		return err
	}
	if err := conn.Create(row).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("create %s %q: %w", t.name, id, ports.ErrDuplicate)
		}
		return fmt.Errorf("create %s %q: %w", t.name, id, err)
	}
	return nil
}

// update overwrites every column except id and created_at.
func (t table[M]) update(ctx context.Context, id string, row *M) error {
	conn, err := t.conn(ctx)
	if err != nil {
		return err
	}
	res := conn.Model(new(M)).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(row)
	if res.Error != nil {
		if db.IsUniqueViolation(res.Error) {
			return fmt.Errorf("update %s %q: %w", t.name, id, ports.ErrDuplicate)
		}
		return fmt.Errorf("update %s %q: %w", t.name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update %s %q: %w", t.name, id, ports.ErrNotFound)
	}
	return nil
}

func (t table[M]) delete(ctx context.Context, id string) error {
	conn, err := t.conn(ctx)
	if err != nil {
		return err
	}
	res := conn.Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return fmt.Errorf("delete %s %q: %w", t.name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s %q: %w", t.name, id, ports.ErrNotFound)
	}
	return nil
}

func mapRows[M any, D any](rows []*M, fn func(*M) *D) []*D {
	out := make([]*D, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}
