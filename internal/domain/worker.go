package domain

import "time"

type WorkerStatus string

const (
	WorkerAvailable WorkerStatus = "available"
	WorkerOccupied  WorkerStatus = "occupied"
	WorkerAbsent    WorkerStatus = "absent"
)

func (s WorkerStatus) IsValid() bool {
	switch s {
	case WorkerAvailable, WorkerOccupied, WorkerAbsent:
		return true
	default:
		return false
	}
}

func (s WorkerStatus) String() string {
	return string(s)
}

// A collection crew member.
type Worker struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	RoleID    string
	Status    WorkerStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
