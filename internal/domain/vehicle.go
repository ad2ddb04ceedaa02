package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in_use"
	VehicleMaintenance VehicleStatus = "maintenance"
)

func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleAvailable, VehicleInUse, VehicleMaintenance:
		return true
	default:
		return false
	}
}

func (s VehicleStatus) String() string {
	return string(s)
}

type Vehicle struct {
	ID                 string
	RegistrationNumber string
	Type               string
	CapacityKg         decimal.Decimal
	Status             VehicleStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
