package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeWeight   = errors.New("weight must not be negative")
	ErrEndBeforeStart   = errors.New("end time must not be before start time")
	ErrMissingStartTime = errors.New("start time is required")
)

// A record of one pickup event. WorkerID and RouteID are optional.
type CollectionLog struct {
	ID        string
	ZoneID    string
	VehicleID string
	WorkerID  *string
	RouteID   *string
	StartTime time.Time
	EndTime   *time.Time
	WeightKg  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the time window and weight.
func (l *CollectionLog) Validate() error {
	if l.StartTime.IsZero() {
		return ErrMissingStartTime
	}
	if l.EndTime != nil && l.EndTime.Before(l.StartTime) {
		return ErrEndBeforeStart
	}
	if l.WeightKg.IsNegative() {
		return ErrNegativeWeight
	}
	return nil
}

// Day truncates the start time to its UTC calendar day.
func (l *CollectionLog) Day() time.Time {
	return StartOfDay(l.StartTime)
}

// StartOfDay returns midnight UTC of t's UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
