package services

import (
	"math"
	"strconv"
	"time"

	"wastewise-admin-service/internal/domain"

	"github.com/shopspring/decimal"
)

// NoEstimate is the route panel's average when there are no routes.
const NoEstimate = "N/A"

type WorkerPanel struct {
	Occupied  int
	Available int
	Absent    int
	Workers   []*domain.Worker
}

type ZonePanel struct {
	TotalZones       int
	ZonesWithRoutes  int
	UnassignedRoutes int
	Zones            []*domain.Zone
}

type RoutePanel struct {
	TotalRoutes          int
	RoutesAssigned       int
	AverageEstimatedTime string
	Routes               []*domain.Route
}

type VehicleRow struct {
	Vehicle        *domain.Vehicle
	WeeklyWeightKg decimal.Decimal
}

type VehiclePanel struct {
	TotalVehicles int
	ByStatus      map[domain.VehicleStatus]int
	Vehicles      []VehicleRow
}

type AssignmentRow struct {
	Assignment *domain.Assignment
	WorkerName string
}

type AssignmentPanel struct {
	ByStatus    map[domain.AssignmentStatus]int
	Assignments []AssignmentRow
}

type HomePanel struct {
	Workers     int
	Zones       int
	Routes      int
	Vehicles    int
	Assignments int
	Logs        int
	Weekly      domain.Summary
	RecentLogs  []*domain.CollectionLog
}

func BuildWorkerPanel(s *Snapshot) WorkerPanel {
	p := WorkerPanel{Workers: s.Workers}
	for _, w := range s.Workers {
		switch w.Status {
		case domain.WorkerOccupied:
			p.Occupied++
		case domain.WorkerAvailable:
			p.Available++
		case domain.WorkerAbsent:
			p.Absent++
		}
	}
	return p
}

// BuildZonePanel counts distinct zone ids referenced by routes, and routes whose
// zone no longer exists.
func BuildZonePanel(s *Snapshot) ZonePanel {
	zones := make(map[string]struct{}, len(s.Zones))
	for _, z := range s.Zones {
		zones[z.ID] = struct{}{}
	}

	referenced := map[string]struct{}{}
	unassigned := 0
	for _, r := range s.Routes {
		referenced[r.ZoneID] = struct{}{}
		if _, ok := zones[r.ZoneID]; !ok {
			unassigned++
		}
	}

	return ZonePanel{
		TotalZones:       len(s.Zones),
		ZonesWithRoutes:  len(referenced),
		UnassignedRoutes: unassigned,
		Zones:            s.Zones,
	}
}

// AverageEstimatedTime averages the first duration found in each estimate.
// Routes without one count as zero minutes.
func AverageEstimatedTime(routes []*domain.Route) string {
	if len(routes) == 0 {
		return NoEstimate
	}
	total := 0
	for _, r := range routes {
		m, _ := domain.ParseEstimatedMinutes(r.EstimatedTime)
		total += m
	}
	avg := math.Round(float64(total) / float64(len(routes)))
	return strconv.Itoa(int(avg)) + " minutes"
}

func BuildRoutePanel(s *Snapshot) RoutePanel {
	assigned := map[string]struct{}{}
	for _, a := range s.Assignments {
		assigned[a.RouteID] = struct{}{}
	}
	return RoutePanel{
		TotalRoutes:          len(s.Routes),
		RoutesAssigned:       len(assigned),
		AverageEstimatedTime: AverageEstimatedTime(s.Routes),
		Routes:               s.Routes,
	}
}

// BuildVehiclePanel attaches each vehicle's weight over the seven days ending now.
func BuildVehiclePanel(s *Snapshot, now time.Time) VehiclePanel {
	to := domain.StartOfDay(now)
	weights := WeightByVehicle(s.Logs, to.AddDate(0, 0, -6), to)

	p := VehiclePanel{
		TotalVehicles: len(s.Vehicles),
		ByStatus: map[domain.VehicleStatus]int{
			domain.VehicleAvailable:   0,
			domain.VehicleInUse:       0,
			domain.VehicleMaintenance: 0,
		},
		Vehicles: make([]VehicleRow, 0, len(s.Vehicles)),
	}
	for _, v := range s.Vehicles {
		p.ByStatus[v.Status]++
		w, ok := weights[v.ID]
		if !ok {
			w = decimal.Zero
		}
		p.Vehicles = append(p.Vehicles, VehicleRow{Vehicle: v, WeeklyWeightKg: w})
	}
	return p
}

func BuildAssignmentPanel(s *Snapshot) AssignmentPanel {
	p := AssignmentPanel{
		ByStatus:    make(map[domain.AssignmentStatus]int, len(domain.AssignmentStatuses)),
		Assignments: make([]AssignmentRow, 0, len(s.Assignments)),
	}
	for _, st := range domain.AssignmentStatuses {
		p.ByStatus[st] = 0
	}
	for _, a := range s.Assignments {
		p.ByStatus[a.Status]++
		p.Assignments = append(p.Assignments, AssignmentRow{Assignment: a, WorkerName: s.WorkerName(a.WorkerID)})
	}
	return p
}

func BuildHomePanel(s *Snapshot, now time.Time, recentLimit int) HomePanel {
	return HomePanel{
		Workers:     len(s.Workers),
		Zones:       len(s.Zones),
		Routes:      len(s.Routes),
		Vehicles:    len(s.Vehicles),
		Assignments: len(s.Assignments),
		Logs:        len(s.Logs),
		Weekly:      WeeklySummary(s.Logs, now),
		RecentLogs:  RecentLogs(s.Logs, recentLimit),
	}
}
