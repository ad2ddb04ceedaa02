package ports

import (
	"context"
	"errors"
	"time"

	"wastewise-admin-service/internal/domain"
)

// Sentinels returned by every repository implementation.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type WorkerRepository interface {
	List(ctx context.Context) ([]*domain.Worker, error)
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	Create(ctx context.Context, w *domain.Worker) error
	Update(ctx context.Context, w *domain.Worker) error
	DeleteByID(ctx context.Context, id string) error
}

type ZoneRepository interface {
	List(ctx context.Context) ([]*domain.Zone, error)
	GetByID(ctx context.Context, id string) (*domain.Zone, error)
	Create(ctx context.Context, z *domain.Zone) error
	Update(ctx context.Context, z *domain.Zone) error
	DeleteByID(ctx context.Context, id string) error
}

type RouteRepository interface {
	List(ctx context.Context) ([]*domain.Route, error)
	ListByZone(ctx context.Context, zoneID string) ([]*domain.Route, error)
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	Create(ctx context.Context, r *domain.Route) error
	Update(ctx context.Context, r *domain.Route) error
	DeleteByID(ctx context.Context, id string) error
}

type VehicleRepository interface {
	List(ctx context.Context) ([]*domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Create(ctx context.Context, v *domain.Vehicle) error
	Update(ctx context.Context, v *domain.Vehicle) error
	DeleteByID(ctx context.Context, id string) error
}

// LogFilter narrows collection log queries. Zero fields are ignored.
// From is inclusive, To is exclusive.
type LogFilter struct {
	ZoneID    string
	VehicleID string
	From      time.Time
	To        time.Time
}

type CollectionLogRepository interface {
	List(ctx context.Context) ([]*domain.CollectionLog, error)
	Find(ctx context.Context, f LogFilter) ([]*domain.CollectionLog, error)
	GetByID(ctx context.Context, id string) (*domain.CollectionLog, error)
	Create(ctx context.Context, l *domain.CollectionLog) error
	Update(ctx context.Context, l *domain.CollectionLog) error
	DeleteByID(ctx context.Context, id string) error
}

type AssignmentRepository interface {
	List(ctx context.Context) ([]*domain.Assignment, error)
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	Create(ctx context.Context, a *domain.Assignment) error
	Update(ctx context.Context, a *domain.Assignment) error
	DeleteByID(ctx context.Context, id string) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	UpdateTheme(ctx context.Context, id string, theme domain.Theme) error
}

// Repositories groups every record store.
type Repositories struct {
	Workers     WorkerRepository
	Zones       ZoneRepository
	Routes      RouteRepository
	Vehicles    VehicleRepository
	Logs        CollectionLogRepository
	Assignments AssignmentRepository
	Users       UserRepository
}
