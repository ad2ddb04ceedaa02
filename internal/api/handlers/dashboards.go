package handlers

import (
	"context"
	"net/http"

	"wastewise-admin-service/internal/api/dto"
	"wastewise-admin-service/internal/api/responses"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/services"
)

// DashboardHandler serves the management panels outside the console flow.
type DashboardHandler struct {
	Pickup *services.PickupService
	Log    *logger.Logger
}

func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	panel(w, r, h.Log, h.Pickup.HomePanel, dto.HomePanel)
}

func (h *DashboardHandler) Workers(w http.ResponseWriter, r *http.Request) {
	panel(w, r, h.Log, h.Pickup.WorkerPanel, dto.WorkerPanel)
}

func (h *DashboardHandler) Zones(w http.ResponseWriter, r *http.Request) {
	panel(w, r, h.Log, h.Pickup.ZonePanel, dto.ZonePanel)
}

func (h *DashboardHandler) Routes(w http.ResponseWriter, r *http.Request) {
	panel(w, r, h.Log, h.Pickup.RoutePanel, dto.RoutePanel)
}

func (h *DashboardHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	panel(w, r, h.Log, h.Pickup.VehiclePanel, dto.VehiclePanel)
}

func (h *DashboardHandler) Assignments(w http.ResponseWriter, r *http.Request) {
	panel(w, r, h.Log, h.Pickup.AssignmentPanel, dto.AssignmentPanel)
}

func panel[P any, R any](w http.ResponseWriter, r *http.Request, logg *logger.Logger, build func(context.Context) (P, error), view func(P) R) {
	p, err := build(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}
	responses.WriteSuccess(w, view(p))
}

// ZoneRoutes lists the routes of one zone.
func (h *DashboardHandler) ZoneRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Pickup.RoutesByZone(r.Context(), pathID(r))
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.Routes(routes))
}
