package repositories

import (
	"wastewise-admin-service/internal/ports"

	"gorm.io/gorm"
)

// New wires every GORM repository onto one connection.
func New(db *gorm.DB) ports.Repositories {
	return ports.Repositories{
		Workers:     NewGormWorkerRepository(db),
		Zones:       NewGormZoneRepository(db),
		Routes:      NewGormRouteRepository(db),
		Vehicles:    NewGormVehicleRepository(db),
		Logs:        NewGormCollectionLogRepository(db),
		Assignments: NewGormAssignmentRepository(db),
		Users:       NewGormUserRepository(db),
	}
}
