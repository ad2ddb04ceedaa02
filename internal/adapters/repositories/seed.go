package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/security"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSeed struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
	Theme    string `json:"theme"`
}

type WorkerSeed struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	RoleID string `json:"roleId"`
	Status string `json:"status"`
}

type ZoneSeed struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AreaCoverage string `json:"areaCoverage"`
}

type RouteSeed struct {
	ID            string `json:"id"`
	ZoneID        string `json:"zoneId"`
	Name          string `json:"name"`
	PathDetails   string `json:"pathDetails"`
	EstimatedTime string `json:"estimatedTime"`
}

type VehicleSeed struct {
	ID                 string          `json:"id"`
	RegistrationNumber string          `json:"registrationNumber"`
	Type               string          `json:"type"`
	CapacityKg         decimal.Decimal `json:"capacityKg"`
	Status             string          `json:"status"`
}

type CollectionLogSeed struct {
	ID        string          `json:"id"`
	ZoneID    string          `json:"zoneId"`
	VehicleID string          `json:"vehicleId"`
	WorkerID  *string         `json:"workerId"`
	RouteID   *string         `json:"routeId"`
	StartTime time.Time       `json:"startTime"`
	EndTime   *time.Time      `json:"endTime"`
	WeightKg  decimal.Decimal `json:"weightKg"`
}

type AssignmentSeed struct {
	ID            string    `json:"id"`
	RouteID       string    `json:"routeId"`
	WorkerID      string    `json:"workerId"`
	VehicleID     string    `json:"vehicleId"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Status        string    `json:"status"`
}

// Seed is the layout of the demo data file.
type Seed struct {
	Users       []UserSeed          `json:"users"`
	Workers     []WorkerSeed        `json:"workers"`
	Zones       []ZoneSeed          `json:"zones"`
	Routes      []RouteSeed         `json:"routes"`
	Vehicles    []VehicleSeed       `json:"vehicles"`
	Logs        []CollectionLogSeed `json:"logs"`
	Assignments []AssignmentSeed    `json:"assignments"`
}

// SeedCounts reports how many rows of each kind were upserted.
type SeedCounts struct {
	Users, Workers, Zones, Routes, Vehicles, Logs, Assignments int
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// SeedFromJSON upserts the records in jsonPath inside one transaction.
func SeedFromJSON(ctx context.Context, db Transactor, jsonPath string) (SeedCounts, error) {
	if db == nil {
		return SeedCounts{}, errors.New("seed: DB is nil")
	}

	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return SeedCounts{}, fmt.Errorf("seed: read %q: %w", jsonPath, err)
	}

	var data Seed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return SeedCounts{}, fmt.Errorf("seed: parse json: %w", err)
	}

	rows, err := data.toModels()
	if err != nil {
		return SeedCounts{}, fmt.Errorf("seed: %w", err)
	}

	err = db.WithTx(ctx, func(tx *gorm.DB) error {
		for _, batch := range rows.batches() {
			if batch.n == 0 {
				continue
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(batch.rows).Error; err != nil {
				return fmt.Errorf("insert %s: %w", batch.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return SeedCounts{}, fmt.Errorf("seed: %w", err)
	}

	return rows.counts(), nil
}

type seedModels struct {
	users       []*userModel
	workers     []*workerModel
	zones       []*zoneModel
	routes      []*routeModel
	vehicles    []*vehicleModel
	logs        []*collectionLogModel
	assignments []*assignmentModel
}

type seedBatch struct {
	name string
	n    int
	rows any
}

func (s seedModels) batches() []seedBatch {
	return []seedBatch{
		{"users", len(s.users), s.users},
		{"workers", len(s.workers), s.workers},
		{"zones", len(s.zones), s.zones},
		{"routes", len(s.routes), s.routes},
		{"vehicles", len(s.vehicles), s.vehicles},
		{"collection logs", len(s.logs), s.logs},
		{"assignments", len(s.assignments), s.assignments},
	}
}

func (s seedModels) counts() SeedCounts {
	return SeedCounts{
		Users:       len(s.users),
		Workers:     len(s.workers),
		Zones:       len(s.zones),
		Routes:      len(s.routes),
		Vehicles:    len(s.vehicles),
		Logs:        len(s.logs),
		Assignments: len(s.assignments),
	}
}

// toModels validates every item and hashes user passwords.
func (s Seed) toModels() (seedModels, error) {
	var out seedModels
	// Stagger created_at so storage order follows file order.
	base := time.Now().UTC().Add(-time.Hour)
	stamp := func(i int) time.Time { return base.Add(time.Duration(i) * time.Millisecond) }

	for i, u := range s.Users {
		if err := requireFields("user", i, u.ID, u.Name, u.Email, u.Password); err != nil {
			return out, err
		}
		hash, err := security.HashPassword(u.Password)
		if err != nil {
			return out, fmt.Errorf("user at index %d: hash password: %w", i+1, err)
		}
		theme := domain.Theme(u.Theme)
		if !theme.IsValid() {
			theme = domain.ThemeLight
		}
		role := strings.TrimSpace(u.Role)
		if role == "" {
			role = domain.RoleAdmin
		}
		out.users = append(out.users, &userModel{
			ID: u.ID, Name: strings.TrimSpace(u.Name), Email: strings.ToLower(strings.TrimSpace(u.Email)),
			Role: role, PasswordHash: hash, Theme: string(theme), CreatedAt: stamp(i), UpdatedAt: stamp(i),
		})
	}

	for i, w := range s.Workers {
		if err := requireFields("worker", i, w.ID, w.Name); err != nil {
			return out, err
		}
		if !domain.WorkerStatus(w.Status).IsValid() {
			return out, fmt.Errorf("worker at index %d: invalid status %q", i+1, w.Status)
		}
		out.workers = append(out.workers, &workerModel{
			ID: w.ID, Name: strings.TrimSpace(w.Name), Phone: w.Phone, Email: w.Email,
			RoleID: w.RoleID, Status: w.Status, CreatedAt: stamp(i), UpdatedAt: stamp(i),
		})
	}

	for i, z := range s.Zones {
		if err := requireFields("zone", i, z.ID, z.Name); err != nil {
			return out, err
		}
		out.zones = append(out.zones, &zoneModel{
			ID: z.ID, Name: strings.TrimSpace(z.Name), AreaCoverage: z.AreaCoverage,
			CreatedAt: stamp(i), UpdatedAt: stamp(i),
		})
	}

	for i, r := range s.Routes {
		if err := requireFields("route", i, r.ID, r.ZoneID, r.Name); err != nil {
			return out, err
		}
		out.routes = append(out.routes, &routeModel{
			ID: r.ID, ZoneID: r.ZoneID, Name: strings.TrimSpace(r.Name), PathDetails: r.PathDetails,
			EstimatedTime: r.EstimatedTime, CreatedAt: stamp(i), UpdatedAt: stamp(i),
		})
	}

	for i, v := range s.Vehicles {
		if err := requireFields("vehicle", i, v.ID, v.RegistrationNumber); err != nil {
			return out, err
		}
		if !domain.VehicleStatus(v.Status).IsValid() {
			return out, fmt.Errorf("vehicle at index %d: invalid status %q", i+1, v.Status)
		}
		out.vehicles = append(out.vehicles, &vehicleModel{
			ID: v.ID, RegistrationNumber: v.RegistrationNumber, Type: v.Type, CapacityKg: v.CapacityKg,
			Status: v.Status, CreatedAt: stamp(i), UpdatedAt: stamp(i),
		})
	}

	for i, l := range s.Logs {
		if err := requireFields("log", i, l.ID, l.ZoneID, l.VehicleID); err != nil {
			return out, err
		}
		entry := domain.CollectionLog{
			ID: l.ID, ZoneID: l.ZoneID, VehicleID: l.VehicleID, WorkerID: l.WorkerID, RouteID: l.RouteID,
			StartTime: l.StartTime, EndTime: l.EndTime, WeightKg: l.WeightKg,
			CreatedAt: stamp(i), UpdatedAt: stamp(i),
		}
		if err := entry.Validate(); err != nil {
			return out, fmt.Errorf("log at index %d: %w", i+1, err)
		}
		out.logs = append(out.logs, collectionLogFromDomain(&entry))
	}

	for i, a := range s.Assignments {
		if err := requireFields("assignment", i, a.ID, a.RouteID, a.WorkerID, a.VehicleID); err != nil {
			return out, err
		}
		if !domain.AssignmentStatus(a.Status).IsValid() {
			return out, fmt.Errorf("assignment at index %d: invalid status %q", i+1, a.Status)
		}
		out.assignments = append(out.assignments, &assignmentModel{
			ID: a.ID, RouteID: a.RouteID, WorkerID: a.WorkerID, VehicleID: a.VehicleID,
			ScheduledDate: a.ScheduledDate.UTC(), Status: a.Status, CreatedAt: stamp(i), UpdatedAt: stamp(i),
		})
	}

	return out, nil
}

func requireFields(kind string, index int, values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s at index %d: required field is empty", kind, index+1)
		}
	}
	return nil
}
