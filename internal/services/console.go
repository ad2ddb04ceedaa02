package services

import (
	"context"
	"errors"
	"fmt"

	"wastewise-admin-service/internal/domain"
	apperrors "wastewise-admin-service/internal/platform/errors"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/ports"
)

// Sidebar names accepted by ToggleSidebar.
const (
	SidebarMobile  = "mobile"
	SidebarDesktop = "desktop"
)

// FormContext is the panel payload of a create/update/delete form.
type FormContext struct {
	Action     domain.FormAction
	Entity     domain.Entity
	SelectedID *string
	// Selected is the chosen record, nil when none is chosen or it no longer exists.
	Selected any
	// Options are the records the form lets the admin pick from.
	Options any
	// Zones feeds the zone picker of route forms.
	Zones []*domain.Zone
}

// ConsoleView is a rendered console: its state, the sidebar and the active panel.
type ConsoleView struct {
	State    domain.ConsoleState
	NavItems []domain.NavItem
	Panel    any
}

// ConsoleService drives the per-session admin console.
type ConsoleService struct {
	store   ports.ConsoleStore
	pickup  *PickupService
	records *RecordService
	logg    *logger.Logger
}

func NewConsoleService(store ports.ConsoleStore, pickup *PickupService, records *RecordService, logg *logger.Logger) *ConsoleService {
	if logg == nil {
		logg = logger.Nop()
	}
	return &ConsoleService{store: store, pickup: pickup, records: records, logg: logg}
}

func (s *ConsoleService) Current(ctx context.Context, accessID string) (*ConsoleView, error) {
	state, err := s.load(ctx, accessID)
	if err != nil {
		return nil, err
	}
	return s.Render(ctx, state)
}

func (s *ConsoleService) Navigate(ctx context.Context, accessID, view string) (*ConsoleView, error) {
	return s.transition(ctx, accessID, func(st *domain.ConsoleState) error {
		st.Navigate(domain.View(view))
		return nil
	})
}

func (s *ConsoleService) Open(ctx context.Context, accessID, action, entity string, id *string) (*ConsoleView, error) {
	return s.transition(ctx, accessID, func(st *domain.ConsoleState) error {
		err := st.Open(domain.FormAction(action), domain.Entity(entity), optionalID(id))
		if errors.Is(err, domain.ErrNoSuchForm) {
			return validationError("no such form", map[string]string{"action": action, "entity": entity})
		}
		return err
	})
}

// Back returns from a form without saving.
func (s *ConsoleService) Back(ctx context.Context, accessID string) (*ConsoleView, error) {
	return s.transition(ctx, accessID, func(st *domain.ConsoleState) error {
		st.Back()
		return nil
	})
}

// Success returns from a form after its record was saved.
func (s *ConsoleService) Success(ctx context.Context, accessID string) (*ConsoleView, error) {
	return s.Back(ctx, accessID)
}

func (s *ConsoleService) ToggleSidebar(ctx context.Context, accessID, which string) (*ConsoleView, error) {
	return s.transition(ctx, accessID, func(st *domain.ConsoleState) error {
		switch which {
		case SidebarMobile:
			st.ToggleMobileSidebar()
		case SidebarDesktop:
			st.ToggleDesktopSidebar()
		default:
			return validationError("unknown sidebar", map[string]string{"sidebar": "must be mobile or desktop"})
		}
		return nil
	})
}

func (s *ConsoleService) load(ctx context.Context, accessID string) (domain.ConsoleState, error) {
	state, err := s.store.Load(ctx, accessID)
	if err != nil {
		return domain.ConsoleState{}, fmt.Errorf("console: %w", err)
	}
	return state, nil
}

func (s *ConsoleService) transition(ctx context.Context, accessID string, fn func(*domain.ConsoleState) error) (*ConsoleView, error) {
	state, err := s.load(ctx, accessID)
	if err != nil {
		return nil, err
	}
	if err := fn(&state); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, accessID, state); err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	s.logg.Debug(s.logg.WithField(ctx, "view", string(state.View)), "console transition")
	return s.Render(ctx, state)
}

// Render builds the panel the state's view shows.
func (s *ConsoleService) Render(ctx context.Context, state domain.ConsoleState) (*ConsoleView, error) {
	view := &ConsoleView{State: state, NavItems: domain.NavItems}

	var err error
	switch state.View {
	case domain.ViewWorkerManagement:
		view.Panel, err = s.pickup.WorkerPanel(ctx)
	case domain.ViewZoneManagement:
		view.Panel, err = s.pickup.ZonePanel(ctx)
	case domain.ViewRouteManagement:
		view.Panel, err = s.pickup.RoutePanel(ctx)
	case domain.ViewVehicleManagement:
		view.Panel, err = s.pickup.VehiclePanel(ctx)
	case domain.ViewAssignmentManagement:
		view.Panel, err = s.pickup.AssignmentPanel(ctx)
	default:
		if state.View.IsForm() {
			view.Panel, err = s.formContext(ctx, state)
		} else {
			view.Panel, err = s.pickup.HomePanel(ctx)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", state.View, err)
	}
	return view, nil
}

func (s *ConsoleService) formContext(ctx context.Context, state domain.ConsoleState) (*FormContext, error) {
	entity, _ := state.View.ManagedEntity()
	fc := &FormContext{
		Action: formAction(state.View),
		Entity: entity,
	}
	if fc.Action != domain.ActionCreate {
		fc.SelectedID = state.Selected(entity)
	}

	pick := fc.Action != domain.ActionCreate
	var err error
	switch entity {
	case domain.EntityWorker:
		if pick {
			fc.Options, err = s.records.ListWorkers(ctx)
		}
		if err == nil && fc.SelectedID != nil {
			fc.Selected, err = selected(s.records.GetWorker(ctx, *fc.SelectedID))
		}
	case domain.EntityZone:
		if pick {
			fc.Options, err = s.records.ListZones(ctx)
		}
		if err == nil && fc.SelectedID != nil {
			fc.Selected, err = selected(s.records.GetZone(ctx, *fc.SelectedID))
		}
	case domain.EntityRoute:
		fc.Zones, err = s.records.ListZones(ctx)
		if err == nil && pick {
			fc.Options, err = s.records.ListRoutes(ctx)
		}
		if err == nil && fc.SelectedID != nil {
			fc.Selected, err = selected(s.records.GetRoute(ctx, *fc.SelectedID))
		}
	case domain.EntityVehicle:
		if pick {
			fc.Options, err = s.records.ListVehicles(ctx)
		}
		if err == nil && fc.SelectedID != nil {
			fc.Selected, err = selected(s.records.GetVehicle(ctx, *fc.SelectedID))
		}
	}
	if err != nil {
		return nil, err
	}
	return fc, nil
}

func formAction(v domain.View) domain.FormAction {
	entity, _ := v.ManagedEntity()
	for _, a := range []domain.FormAction{domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete} {
		if fv, ok := domain.FormView(a, entity); ok && fv == v {
			return a
		}
	}
	return ""
}

// selected drops a vanished record instead of failing the render.
func selected[T any](rec *T, err error) (any, error) {
	if apperrors.IsCode(err, apperrors.CodeNotFound) {
		return nil, nil
	}
	if err != nil || rec == nil {
		return nil, err
	}
	return rec, nil
}
