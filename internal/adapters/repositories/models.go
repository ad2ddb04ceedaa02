package repositories

import (
	"time"

	"wastewise-admin-service/internal/domain"

	"github.com/shopspring/decimal"
)

type workerModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Phone     string
	Email     string
	RoleID    string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (workerModel) TableName() string { return "workers" }

func workerFromDomain(w *domain.Worker) *workerModel {
	return &workerModel{
		ID:        w.ID,
		Name:      w.Name,
		Phone:     w.Phone,
		Email:     w.Email,
		RoleID:    w.RoleID,
		Status:    string(w.Status),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func (m *workerModel) toDomain() *domain.Worker {
	return &domain.Worker{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		RoleID:    m.RoleID,
		Status:    domain.WorkerStatus(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type zoneModel struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	AreaCoverage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (zoneModel) TableName() string { return "zones" }

func zoneFromDomain(z *domain.Zone) *zoneModel {
	return &zoneModel{
		ID:           z.ID,
		Name:         z.Name,
		AreaCoverage: z.AreaCoverage,
		CreatedAt:    z.CreatedAt,
		UpdatedAt:    z.UpdatedAt,
	}
}

func (m *zoneModel) toDomain() *domain.Zone {
	return &domain.Zone{
		ID:           m.ID,
		Name:         m.Name,
		AreaCoverage: m.AreaCoverage,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

type routeModel struct {
	ID            string `gorm:"primaryKey"`
	ZoneID        string
	Name          string
	PathDetails   string
	EstimatedTime string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (routeModel) TableName() string { return "routes" }

func routeFromDomain(r *domain.Route) *routeModel {
	return &routeModel{
		ID:            r.ID,
		ZoneID:        r.ZoneID,
		Name:          r.Name,
		PathDetails:   r.PathDetails,
		EstimatedTime: r.EstimatedTime,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (m *routeModel) toDomain() *domain.Route {
	return &domain.Route{
		ID:            m.ID,
		ZoneID:        m.ZoneID,
		Name:          m.Name,
		PathDetails:   m.PathDetails,
		EstimatedTime: m.EstimatedTime,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

type vehicleModel struct {
	ID                 string `gorm:"primaryKey"`
	RegistrationNumber string
	Type               string
	CapacityKg         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (vehicleModel) TableName() string { return "vehicles" }

func vehicleFromDomain(v *domain.Vehicle) *vehicleModel {
	return &vehicleModel{
		ID:                 v.ID,
		RegistrationNumber: v.RegistrationNumber,
		Type:               v.Type,
		CapacityKg:         v.CapacityKg,
		Status:             string(v.Status),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func (m *vehicleModel) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:                 m.ID,
		RegistrationNumber: m.RegistrationNumber,
		Type:               m.Type,
		CapacityKg:         m.CapacityKg,
		Status:             domain.VehicleStatus(m.Status),
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}
}

type collectionLogModel struct {
	ID        string `gorm:"primaryKey"`
	ZoneID    string
	VehicleID string
	WorkerID  *string
	RouteID   *string
	StartTime time.Time
	EndTime   *time.Time
	WeightKg  decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (collectionLogModel) TableName() string { return "collection_logs" }

func collectionLogFromDomain(l *domain.CollectionLog) *collectionLogModel {
	m := &collectionLogModel{
		ID:        l.ID,
		ZoneID:    l.ZoneID,
		VehicleID: l.VehicleID,
		WorkerID:  l.WorkerID,
		RouteID:   l.RouteID,
		StartTime: l.StartTime.UTC(),
		WeightKg:  l.WeightKg,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if l.EndTime != nil {
		end := l.EndTime.UTC()
		m.EndTime = &end
	}
	return m
}

func (m *collectionLogModel) toDomain() *domain.CollectionLog {
	l := &domain.CollectionLog{
		ID:        m.ID,
		ZoneID:    m.ZoneID,
		VehicleID: m.VehicleID,
		WorkerID:  m.WorkerID,
		RouteID:   m.RouteID,
		StartTime: m.StartTime.UTC(),
		WeightKg:  m.WeightKg,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
	if m.EndTime != nil {
		end := m.EndTime.UTC()
		l.EndTime = &end
	}
	return l
}

type assignmentModel struct {
	ID            string `gorm:"primaryKey"`
	RouteID       string
	WorkerID      string
	VehicleID     string
	ScheduledDate time.Time
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (assignmentModel) TableName() string { return "assignments" }

func assignmentFromDomain(a *domain.Assignment) *assignmentModel {
	return &assignmentModel{
		ID:            a.ID,
		RouteID:       a.RouteID,
		WorkerID:      a.WorkerID,
		VehicleID:     a.VehicleID,
		ScheduledDate: a.ScheduledDate.UTC(),
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *assignmentModel) toDomain() *domain.Assignment {
	return &domain.Assignment{
		ID:            m.ID,
		RouteID:       m.RouteID,
		WorkerID:      m.WorkerID,
		VehicleID:     m.VehicleID,
		ScheduledDate: m.ScheduledDate.UTC(),
		Status:        domain.AssignmentStatus(m.Status),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

type userModel struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	Email        string
	Role         string
	PasswordHash string
	Theme        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

func userFromDomain(u *domain.User) *userModel {
	return &userModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
		Theme:        string(u.Theme),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         m.Role,
		PasswordHash: m.PasswordHash,
		Theme:        domain.Theme(m.Theme),
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}
