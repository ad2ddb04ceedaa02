package dto

import (
	"time"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/services"

	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

type WorkerRequest struct {
	ID     string `json:"id" validate:"omitempty,max=64"`
	Name   string `json:"name" validate:"required,max=120"`
	Phone  string `json:"phone" validate:"max=40"`
	Email  string `json:"email" validate:"required,email"`
	RoleID string `json:"roleId" validate:"max=64"`
	Status string `json:"status" validate:"omitempty,oneof=available occupied absent"`
}

func (r WorkerRequest) Input() services.WorkerInput {
	return services.WorkerInput{ID: r.ID, Name: r.Name, Phone: r.Phone, Email: r.Email, RoleID: r.RoleID, Status: r.Status}
}

type WorkerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	RoleID    string    `json:"roleId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func Worker(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		Phone:     w.Phone,
		Email:     w.Email,
		RoleID:    w.RoleID,
		Status:    w.Status.String(),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func Workers(ws []*domain.Worker) []WorkerResponse {
	return mapAll(ws, Worker)
}

type ZoneRequest struct {
	ID           string `json:"id" validate:"omitempty,max=64"`
	Name         string `json:"name" validate:"required,max=120"`
	AreaCoverage string `json:"areaCoverage"`
}

func (r ZoneRequest) Input() services.ZoneInput {
	return services.ZoneInput{ID: r.ID, Name: r.Name, AreaCoverage: r.AreaCoverage}
}

type ZoneResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AreaCoverage string    `json:"areaCoverage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func Zone(z *domain.Zone) ZoneResponse {
	return ZoneResponse{ID: z.ID, Name: z.Name, AreaCoverage: z.AreaCoverage, CreatedAt: z.CreatedAt, UpdatedAt: z.UpdatedAt}
}

func Zones(zs []*domain.Zone) []ZoneResponse {
	return mapAll(zs, Zone)
}

type RouteRequest struct {
	ID            string `json:"id" validate:"omitempty,max=64"`
	ZoneID        string `json:"zoneId" validate:"required,max=64"`
	Name          string `json:"name" validate:"required,max=120"`
	PathDetails   string `json:"pathDetails"`
	EstimatedTime string `json:"estimatedTime" validate:"max=64"`
}

func (r RouteRequest) Input() services.RouteInput {
	return services.RouteInput{ID: r.ID, ZoneID: r.ZoneID, Name: r.Name, PathDetails: r.PathDetails, EstimatedTime: r.EstimatedTime}
}

type RouteResponse struct {
	ID            string    `json:"id"`
	ZoneID        string    `json:"zoneId"`
	Name          string    `json:"name"`
	PathDetails   string    `json:"pathDetails"`
	EstimatedTime string    `json:"estimatedTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func Route(r *domain.Route) RouteResponse {
	return RouteResponse{
		ID:            r.ID,
		ZoneID:        r.ZoneID,
		Name:          r.Name,
		PathDetails:   r.PathDetails,
		EstimatedTime: r.EstimatedTime,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func Routes(rs []*domain.Route) []RouteResponse {
	return mapAll(rs, Route)
}

type VehicleRequest struct {
	ID                 string           `json:"id" validate:"omitempty,max=64"`
	RegistrationNumber string           `json:"registrationNumber" validate:"required,max=32"`
	Type               string           `json:"type" validate:"max=64"`
	CapacityKg         *decimal.Decimal `json:"capacityKg" validate:"required"`
	Status             string           `json:"status" validate:"omitempty,oneof=available in_use maintenance"`
}

func (r VehicleRequest) Input() services.VehicleInput {
	in := services.VehicleInput{ID: r.ID, RegistrationNumber: r.RegistrationNumber, Type: r.Type, Status: r.Status}
	if r.CapacityKg != nil {
		in.CapacityKg = *r.CapacityKg
	}
	return in
}

type VehicleResponse struct {
	ID                 string          `json:"id"`
	RegistrationNumber string          `json:"registrationNumber"`
	Type               string          `json:"type"`
	CapacityKg         decimal.Decimal `json:"capacityKg"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func Vehicle(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                 v.ID,
		RegistrationNumber: v.RegistrationNumber,
		Type:               v.Type,
		CapacityKg:         v.CapacityKg,
		Status:             v.Status.String(),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func Vehicles(vs []*domain.Vehicle) []VehicleResponse {
	return mapAll(vs, Vehicle)
}

// AssignmentRequest carries scheduledDate as YYYY-MM-DD.
type AssignmentRequest struct {
	ID            string `json:"id" validate:"omitempty,max=64"`
	RouteID       string `json:"routeId" validate:"required"`
	WorkerID      string `json:"workerId" validate:"required"`
	VehicleID     string `json:"vehicleId" validate:"required"`
	ScheduledDate string `json:"scheduledDate" validate:"required,datetime=2006-01-02"`
	Status        string `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
}

// Input assumes the request passed validation, so the date parses.
func (r AssignmentRequest) Input() services.AssignmentInput {
	date, _ := time.Parse(dateLayout, r.ScheduledDate)
	return services.AssignmentInput{
		ID:            r.ID,
		RouteID:       r.RouteID,
		WorkerID:      r.WorkerID,
		VehicleID:     r.VehicleID,
		ScheduledDate: date,
		Status:        r.Status,
	}
}

type AssignmentResponse struct {
	ID            string    `json:"id"`
	RouteID       string    `json:"routeId"`
	WorkerID      string    `json:"workerId"`
	VehicleID     string    `json:"vehicleId"`
	ScheduledDate string    `json:"scheduledDate"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func Assignment(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:            a.ID,
		RouteID:       a.RouteID,
		WorkerID:      a.WorkerID,
		VehicleID:     a.VehicleID,
		ScheduledDate: a.ScheduledDate.Format(dateLayout),
		Status:        a.Status.String(),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func Assignments(as []*domain.Assignment) []AssignmentResponse {
	return mapAll(as, Assignment)
}

type CollectionLogRequest struct {
	ID        string           `json:"id" validate:"omitempty,max=64"`
	ZoneID    string           `json:"zoneId" validate:"required"`
	VehicleID string           `json:"vehicleId" validate:"required"`
	WorkerID  *string          `json:"workerId"`
	RouteID   *string          `json:"routeId"`
	StartTime *time.Time       `json:"startTime" validate:"required"`
	EndTime   *time.Time       `json:"endTime"`
	WeightKg  *decimal.Decimal `json:"weightKg" validate:"required"`
}

func (r CollectionLogRequest) Input() services.CollectionLogInput {
	in := services.CollectionLogInput{
		ID:        r.ID,
		ZoneID:    r.ZoneID,
		VehicleID: r.VehicleID,
		WorkerID:  r.WorkerID,
		RouteID:   r.RouteID,
		EndTime:   r.EndTime,
	}
	if r.StartTime != nil {
		in.StartTime = *r.StartTime
	}
	if r.WeightKg != nil {
		in.WeightKg = *r.WeightKg
	}
	return in
}

type CollectionLogResponse struct {
	ID        string          `json:"id"`
	ZoneID    string          `json:"zoneId"`
	VehicleID string          `json:"vehicleId"`
	WorkerID  *string         `json:"workerId"`
	RouteID   *string         `json:"routeId"`
	StartTime time.Time       `json:"startTime"`
	EndTime   *time.Time      `json:"endTime"`
	WeightKg  decimal.Decimal `json:"weightKg"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func CollectionLog(l *domain.CollectionLog) CollectionLogResponse {
	return CollectionLogResponse{
		ID:        l.ID,
		ZoneID:    l.ZoneID,
		VehicleID: l.VehicleID,
		WorkerID:  l.WorkerID,
		RouteID:   l.RouteID,
		StartTime: l.StartTime,
		EndTime:   l.EndTime,
		WeightKg:  l.WeightKg,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func CollectionLogs(ls []*domain.CollectionLog) []CollectionLogResponse {
	return mapAll(ls, CollectionLog)
}

// mapAll never returns nil so empty tables encode as [].
func mapAll[T any, R any](in []*T, fn func(*T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
