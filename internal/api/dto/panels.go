package dto

import (
	"fmt"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/services"

	"github.com/shopspring/decimal"
)

type WorkerPanelResponse struct {
	Kind      string           `json:"kind"`
	Occupied  int              `json:"occupied"`
	Available int              `json:"available"`
	Absent    int              `json:"absent"`
	Workers   []WorkerResponse `json:"workers"`
}

type ZonePanelResponse struct {
	Kind             string         `json:"kind"`
	TotalZones       int            `json:"totalZones"`
	ZonesWithRoutes  int            `json:"zonesWithRoutes"`
	UnassignedRoutes int            `json:"unassignedRoutes"`
	Zones            []ZoneResponse `json:"zones"`
}

type RoutePanelResponse struct {
	Kind                 string          `json:"kind"`
	TotalRoutes          int             `json:"totalRoutes"`
	RoutesAssigned       int             `json:"routesAssigned"`
	AverageEstimatedTime string          `json:"averageEstimatedTime"`
	Routes               []RouteResponse `json:"routes"`
}

type VehicleRowResponse struct {
	VehicleResponse
	WeeklyWeightKg decimal.Decimal `json:"weeklyWeightKg"`
}

type VehiclePanelResponse struct {
	Kind          string               `json:"kind"`
	TotalVehicles int                  `json:"totalVehicles"`
	ByStatus      map[string]int       `json:"byStatus"`
	Vehicles      []VehicleRowResponse `json:"vehicles"`
}

type AssignmentRowResponse struct {
	AssignmentResponse
	WorkerName string `json:"workerName"`
}

type AssignmentPanelResponse struct {
	Kind        string                  `json:"kind"`
	ByStatus    map[string]int          `json:"byStatus"`
	Assignments []AssignmentRowResponse `json:"assignments"`
}

type CountsResponse struct {
	Workers     int `json:"workers"`
	Zones       int `json:"zones"`
	Routes      int `json:"routes"`
	Vehicles    int `json:"vehicles"`
	Assignments int `json:"assignments"`
	Logs        int `json:"logs"`
}

type HomePanelResponse struct {
	Kind       string                  `json:"kind"`
	Counts     CountsResponse          `json:"counts"`
	Weekly     SummaryResponse         `json:"weekly"`
	RecentLogs []CollectionLogResponse `json:"recentLogs"`
}

// Panel kinds tell the client which layout to render.
const (
	KindHome        = "home"
	KindWorkers     = "workers"
	KindZones       = "zones"
	KindRoutes      = "routes"
	KindVehicles    = "vehicles"
	KindAssignments = "assignments"
	KindForm        = "form"
)

func WorkerPanel(p services.WorkerPanel) WorkerPanelResponse {
	return WorkerPanelResponse{
		Kind:      KindWorkers,
		Occupied:  p.Occupied,
		Available: p.Available,
		Absent:    p.Absent,
		Workers:   Workers(p.Workers),
	}
}

func ZonePanel(p services.ZonePanel) ZonePanelResponse {
	return ZonePanelResponse{
		Kind:             KindZones,
		TotalZones:       p.TotalZones,
		ZonesWithRoutes:  p.ZonesWithRoutes,
		UnassignedRoutes: p.UnassignedRoutes,
		Zones:            Zones(p.Zones),
	}
}

func RoutePanel(p services.RoutePanel) RoutePanelResponse {
	return RoutePanelResponse{
		Kind:                 KindRoutes,
		TotalRoutes:          p.TotalRoutes,
		RoutesAssigned:       p.RoutesAssigned,
		AverageEstimatedTime: p.AverageEstimatedTime,
		Routes:               Routes(p.Routes),
	}
}

func VehiclePanel(p services.VehiclePanel) VehiclePanelResponse {
	res := VehiclePanelResponse{
		Kind:          KindVehicles,
		TotalVehicles: p.TotalVehicles,
		ByStatus:      make(map[string]int, len(p.ByStatus)),
		Vehicles:      make([]VehicleRowResponse, 0, len(p.Vehicles)),
	}
	for st, n := range p.ByStatus {
		res.ByStatus[st.String()] = n
	}
	for _, row := range p.Vehicles {
		res.Vehicles = append(res.Vehicles, VehicleRowResponse{VehicleResponse: Vehicle(row.Vehicle), WeeklyWeightKg: row.WeeklyWeightKg})
	}
	return res
}

func AssignmentPanel(p services.AssignmentPanel) AssignmentPanelResponse {
	res := AssignmentPanelResponse{
		Kind:        KindAssignments,
		ByStatus:    make(map[string]int, len(p.ByStatus)),
		Assignments: make([]AssignmentRowResponse, 0, len(p.Assignments)),
	}
	for st, n := range p.ByStatus {
		res.ByStatus[st.String()] = n
	}
	for _, row := range p.Assignments {
		res.Assignments = append(res.Assignments, AssignmentRowResponse{AssignmentResponse: Assignment(row.Assignment), WorkerName: row.WorkerName})
	}
	return res
}

func HomePanel(p services.HomePanel) HomePanelResponse {
	return HomePanelResponse{
		Kind: KindHome,
		Counts: CountsResponse{
			Workers:     p.Workers,
			Zones:       p.Zones,
			Routes:      p.Routes,
			Vehicles:    p.Vehicles,
			Assignments: p.Assignments,
			Logs:        p.Logs,
		},
		Weekly:     Summary(p.Weekly),
		RecentLogs: CollectionLogs(p.RecentLogs),
	}
}

type FormResponse struct {
	Kind       string         `json:"kind"`
	Action     string         `json:"action"`
	Entity     string         `json:"entity"`
	SelectedID *string        `json:"selectedId"`
	Selected   any            `json:"selected"`
	Options    any            `json:"options,omitempty"`
	Zones      []ZoneResponse `json:"zones,omitempty"`
}

func Form(fc *services.FormContext) FormResponse {
	res := FormResponse{
		Kind:       KindForm,
		Action:     string(fc.Action),
		Entity:     string(fc.Entity),
		SelectedID: fc.SelectedID,
		Selected:   record(fc.Selected),
		Options:    record(fc.Options),
	}
	if fc.Zones != nil {
		res.Zones = Zones(fc.Zones)
	}
	return res
}

// record maps a domain record or record list to its response shape.
func record(v any) any {
	switch r := v.(type) {
	case nil:
		return nil
	case *domain.Worker:
		return Worker(r)
	case *domain.Zone:
		return Zone(r)
	case *domain.Route:
		return Route(r)
	case *domain.Vehicle:
		return Vehicle(r)
	case []*domain.Worker:
		return Workers(r)
	case []*domain.Zone:
		return Zones(r)
	case []*domain.Route:
		return Routes(r)
	case []*domain.Vehicle:
		return Vehicles(r)
	default:
		panic(fmt.Sprintf("dto: unmapped record %T", v))
	}
}

// Panel maps any console panel to its response shape.
func Panel(p any) any {
	switch v := p.(type) {
	case services.HomePanel:
		return HomePanel(v)
	case services.WorkerPanel:
		return WorkerPanel(v)
	case services.ZonePanel:
		return ZonePanel(v)
	case services.RoutePanel:
		return RoutePanel(v)
	case services.VehiclePanel:
		return VehiclePanel(v)
	case services.AssignmentPanel:
		return AssignmentPanel(v)
	case *services.FormContext:
		return Form(v)
	default:
		panic(fmt.Sprintf("dto: unmapped panel %T", p))
	}
}

type ConsoleResponse struct {
	State    domain.ConsoleState `json:"state"`
	NavItems []domain.NavItem    `json:"navItems"`
	Panel    any                 `json:"panel"`
}

func Console(v *services.ConsoleView) ConsoleResponse {
	return ConsoleResponse{State: v.State, NavItems: v.NavItems, Panel: Panel(v.Panel)}
}

type NavigateRequest struct {
	View string `json:"view" validate:"required"`
}

type OpenFormRequest struct {
	Action string  `json:"action" validate:"required,oneof=create update delete"`
	Entity string  `json:"entity" validate:"required,oneof=worker zone route vehicle"`
	ID     *string `json:"id"`
}

type SidebarRequest struct {
	Sidebar string `json:"sidebar" validate:"required,oneof=mobile desktop"`
}
