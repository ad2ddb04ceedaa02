package domain

import "errors"

// View names the panel the admin console is showing.
type View string

const (
	ViewAdminDashboard       View = "adminDashboard"
	ViewWorkerManagement     View = "workerManagement"
	ViewCreateWorker         View = "createWorker"
	ViewUpdateWorker         View = "updateWorker"
	ViewZoneManagement       View = "zoneManagement"
	ViewCreateZone           View = "createZone"
	ViewUpdateZone           View = "updateZone"
	ViewDeleteZone           View = "deleteZone"
	ViewRouteManagement      View = "routeManagement"
	ViewCreateRoute          View = "createRoute"
	ViewUpdateRoute          View = "updateRoute"
	ViewDeleteRoute          View = "deleteRoute"
	ViewVehicleManagement    View = "vehicleManagement"
	ViewCreateVehicle        View = "createVehicle"
	ViewUpdateVehicle        View = "updateVehicle"
	ViewDeleteVehicle        View = "deleteVehicle"
	ViewAssignmentManagement View = "assignmentManagement"
)

// Entity is a record category managed from the console.
type Entity string

const (
	EntityWorker     Entity = "worker"
	EntityZone       Entity = "zone"
	EntityRoute      Entity = "route"
	EntityVehicle    Entity = "vehicle"
	EntityAssignment Entity = "assignment"
)

// FormAction is what a console form does to its entity.
type FormAction string

const (
	ActionCreate FormAction = "create"
	ActionUpdate FormAction = "update"
	ActionDelete FormAction = "delete"
)

type formKey struct {
	action FormAction
	entity Entity
}

// Form views and the panel each returns to.
var (
	formViews = map[formKey]View{
		{ActionCreate, EntityWorker}:  ViewCreateWorker,
		{ActionUpdate, EntityWorker}:  ViewUpdateWorker,
		{ActionCreate, EntityZone}:    ViewCreateZone,
		{ActionUpdate, EntityZone}:    ViewUpdateZone,
		{ActionDelete, EntityZone}:    ViewDeleteZone,
		{ActionCreate, EntityRoute}:   ViewCreateRoute,
		{ActionUpdate, EntityRoute}:   ViewUpdateRoute,
		{ActionDelete, EntityRoute}:   ViewDeleteRoute,
		{ActionCreate, EntityVehicle}: ViewCreateVehicle,
		{ActionUpdate, EntityVehicle}: ViewUpdateVehicle,
		{ActionDelete, EntityVehicle}: ViewDeleteVehicle,
	}

	parentViews = map[View]View{
		ViewCreateWorker:  ViewWorkerManagement,
		ViewUpdateWorker:  ViewWorkerManagement,
		ViewCreateZone:    ViewZoneManagement,
		ViewUpdateZone:    ViewZoneManagement,
		ViewDeleteZone:    ViewZoneManagement,
		ViewCreateRoute:   ViewRouteManagement,
		ViewUpdateRoute:   ViewRouteManagement,
		ViewDeleteRoute:   ViewRouteManagement,
		ViewCreateVehicle: ViewVehicleManagement,
		ViewUpdateVehicle: ViewVehicleManagement,
		ViewDeleteVehicle: ViewVehicleManagement,
	}

	managementViews = map[View]Entity{
		ViewWorkerManagement:     EntityWorker,
		ViewZoneManagement:       EntityZone,
		ViewRouteManagement:      EntityRoute,
		ViewVehicleManagement:    EntityVehicle,
		ViewAssignmentManagement: EntityAssignment,
	}
)

// ParseView maps unknown names to the admin dashboard.
func ParseView(s string) View {
	v := View(s)
	if v == ViewAdminDashboard {
		return v
	}
	if _, ok := managementViews[v]; ok {
		return v
	}
	if _, ok := parentViews[v]; ok {
		return v
	}
	return ViewAdminDashboard
}

// FormView returns the form view for action on entity.
func FormView(action FormAction, entity Entity) (View, bool) {
	v, ok := formViews[formKey{action, entity}]
	return v, ok
}

// IsForm reports whether v is a create/update/delete form.
func (v View) IsForm() bool {
	_, ok := parentViews[v]
	return ok
}

// Parent is the management panel a form returns to. Non-form views return themselves.
func (v View) Parent() View {
	if p, ok := parentViews[v]; ok {
		return p
	}
	return v
}

// ManagedEntity is the entity shown by a management panel or edited by a form.
func (v View) ManagedEntity() (Entity, bool) {
	e, ok := managementViews[v.Parent()]
	return e, ok
}

// ConsoleState is the per-session admin console state.
type ConsoleState struct {
	View                    View    `json:"view"`
	SelectedZoneID          *string `json:"selectedZoneId"`
	SelectedRouteID         *string `json:"selectedRouteId"`
	SelectedVehicleID       *string `json:"selectedVehicleId"`
	SelectedWorkerID        *string `json:"selectedWorkerId"`
	MobileSidebarOpen       bool    `json:"mobileSidebarOpen"`
	DesktopSidebarCollapsed bool    `json:"desktopSidebarCollapsed"`
}

// NewConsoleState is the state of a freshly logged-in admin.
func NewConsoleState() ConsoleState {
	return ConsoleState{View: ViewAdminDashboard}
}

// ClearSelection forgets every selected record id.
func (s *ConsoleState) ClearSelection() {
	s.SelectedZoneID = nil
	s.SelectedRouteID = nil
	s.SelectedVehicleID = nil
	s.SelectedWorkerID = nil
}

// Selected returns the selected id for entity, or nil.
func (s *ConsoleState) Selected(entity Entity) *string {
	switch entity {
	case EntityZone:
		return s.SelectedZoneID
	case EntityRoute:
		return s.SelectedRouteID
	case EntityVehicle:
		return s.SelectedVehicleID
	case EntityWorker:
		return s.SelectedWorkerID
	default:
		return nil
	}
}

// Select records id as the selection for entity.
func (s *ConsoleState) Select(entity Entity, id *string) {
	switch entity {
	case EntityZone:
		s.SelectedZoneID = id
	case EntityRoute:
		s.SelectedRouteID = id
	case EntityVehicle:
		s.SelectedVehicleID = id
	case EntityWorker:
		s.SelectedWorkerID = id
	}
}

// ErrNoSuchForm is returned by Open for an action the entity does not offer.
var ErrNoSuchForm = errors.New("no form for this action and entity")

// Navigate switches to view from the sidebar. It closes the mobile sidebar and
// forgets every selection.
func (s *ConsoleState) Navigate(view View) {
	s.View = ParseView(string(view))
	s.MobileSidebarOpen = false
	s.ClearSelection()
}

// Open moves to the form for action on entity. Update and delete forms record
// id as the selection; nil lets the admin pick inside the form.
func (s *ConsoleState) Open(action FormAction, entity Entity, id *string) error {
	v, ok := FormView(action, entity)
	if !ok {
		return ErrNoSuchForm
	}
	if action != ActionCreate {
		s.Select(entity, id)
	}
	s.View = v
	return nil
}

// Back leaves a form for its management panel. Selections are kept.
func (s *ConsoleState) Back() {
	s.View = s.View.Parent()
}

func (s *ConsoleState) ToggleMobileSidebar() {
	s.MobileSidebarOpen = !s.MobileSidebarOpen
}

func (s *ConsoleState) ToggleDesktopSidebar() {
	s.DesktopSidebarCollapsed = !s.DesktopSidebarCollapsed
}

// NavItem is one sidebar entry.
type NavItem struct {
	Name string `json:"name"`
	View View   `json:"view"`
}

// NavItems lists the sidebar entries in display order.
var NavItems = []NavItem{
	{Name: "Dashboard", View: ViewAdminDashboard},
	{Name: "Worker", View: ViewWorkerManagement},
	{Name: "Zone", View: ViewZoneManagement},
	{Name: "Route", View: ViewRouteManagement},
	{Name: "Vehicle", View: ViewVehicleManagement},
	{Name: "Assignment", View: ViewAssignmentManagement},
}
