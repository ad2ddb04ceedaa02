package domain

import "time"

type AssignmentStatus string

const (
	AssignmentScheduled  AssignmentStatus = "scheduled"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
	AssignmentCancelled  AssignmentStatus = "cancelled"
)

// AssignmentStatuses lists every status in display order.
var AssignmentStatuses = []AssignmentStatus{
	AssignmentScheduled,
	AssignmentInProgress,
	AssignmentCompleted,
	AssignmentCancelled,
}

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentScheduled, AssignmentInProgress, AssignmentCompleted, AssignmentCancelled:
		return true
	default:
		return false
	}
}

func (s AssignmentStatus) String() string {
	return string(s)
}

// Links a route to the worker and vehicle that run it on a given day.
type Assignment struct {
	ID            string
	RouteID       string
	WorkerID      string
	VehicleID     string
	ScheduledDate time.Time
	Status        AssignmentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
