package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wastewise-admin-service/internal/domain"
)

type AssignmentInput struct {
	ID            string
	RouteID       string
	WorkerID      string
	VehicleID     string
	ScheduledDate time.Time
	Status        string
}

func (s *RecordService) applyAssignment(ctx context.Context, in AssignmentInput, a *domain.Assignment) error {
	errs := fieldErrors{}
	a.RouteID = required(errs, "routeId", in.RouteID)
	a.WorkerID = required(errs, "workerId", in.WorkerID)
	a.VehicleID = required(errs, "vehicleId", in.VehicleID)
	if in.ScheduledDate.IsZero() {
		errs.add("scheduledDate", "is required")
	}
	a.ScheduledDate = domain.StartOfDay(in.ScheduledDate)
	a.Status = domain.AssignmentStatus(strings.TrimSpace(in.Status))
	if a.Status == "" {
		a.Status = domain.AssignmentScheduled
	}
	if !a.Status.IsValid() {
		errs.add("status", "must be one of scheduled, in_progress, completed, cancelled")
	}

	refs := []struct {
		field, id string
		get       func(context.Context, string) error
	}{
		{"routeId", a.RouteID, func(ctx context.Context, id string) error { _, err := s.repos.Routes.GetByID(ctx, id); return err }},
		{"workerId", a.WorkerID, func(ctx context.Context, id string) error { _, err := s.repos.Workers.GetByID(ctx, id); return err }},
		{"vehicleId", a.VehicleID, func(ctx context.Context, id string) error { _, err := s.repos.Vehicles.GetByID(ctx, id); return err }},
	}
	for _, ref := range refs {
		if err := exists(ctx, errs, ref.field, ref.id, ref.get); err != nil {
			return fmt.Errorf("check %s: %w", ref.field, err)
		}
	}
	return errs.err()
}

func (s *RecordService) ListAssignments(ctx context.Context) ([]*domain.Assignment, error) {
	out, err := s.repos.Assignments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return out, nil
}

func (s *RecordService) GetAssignment(ctx context.Context, id string) (*domain.Assignment, error) {
	a, err := s.repos.Assignments.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "assignment", id)
	}
	return a, nil
}

// CreateAssignment requires the route, worker and vehicle to exist.
func (s *RecordService) CreateAssignment(ctx context.Context, in AssignmentInput) (*domain.Assignment, error) {
	a := &domain.Assignment{ID: s.idOrNew(in.ID)}
	if err := s.applyAssignment(ctx, in, a); err != nil {
		return nil, err
	}
	a.CreatedAt = s.now()
	a.UpdatedAt = a.CreatedAt
	if err := s.repos.Assignments.Create(ctx, a); err != nil {
		return nil, repoError(err, "assignment", a.ID)
	}
	return a, nil
}

func (s *RecordService) UpdateAssignment(ctx context.Context, id string, in AssignmentInput) (*domain.Assignment, error) {
	a, err := s.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyAssignment(ctx, in, a); err != nil {
		return nil, err
	}
	a.UpdatedAt = s.now()
	if err := s.repos.Assignments.Update(ctx, a); err != nil {
		return nil, repoError(err, "assignment", id)
	}
	return a, nil
}

func (s *RecordService) DeleteAssignment(ctx context.Context, id string) error {
	return repoError(s.repos.Assignments.DeleteByID(ctx, id), "assignment", id)
}
