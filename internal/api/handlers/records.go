package handlers

import (
	"context"
	"net/http"

	"wastewise-admin-service/internal/api/dto"
	"wastewise-admin-service/internal/api/responses"
	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/services"

	"github.com/go-chi/chi/v5"
)

// Resource serves list/get/create/update/delete for one record type.
type Resource[Req any, Rec any, Res any] struct {
	Log    *logger.Logger
	List   func(ctx context.Context) ([]*Rec, error)
	Get    func(ctx context.Context, id string) (*Rec, error)
	Create func(ctx context.Context, req Req) (*Rec, error)
	Update func(ctx context.Context, id string, req Req) (*Rec, error)
	Delete func(ctx context.Context, id string) error
	View   func(*Rec) Res
}

// Register mounts the five operations on r, which is rooted at the collection path.
func (h *Resource[Req, Rec, Res]) Register(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Resource[Req, Rec, Res]) list(w http.ResponseWriter, r *http.Request) {
	recs, err := h.List(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	out := make([]Res, 0, len(recs))
	for _, rec := range recs {
		out = append(out, h.View(rec))
	}
	responses.WriteSuccess(w, out)
}

func (h *Resource[Req, Rec, Res]) get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Get(r.Context(), pathID(r))
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, h.View(rec))
}

func (h *Resource[Req, Rec, Res]) create(w http.ResponseWriter, r *http.Request) {
	var req Req
	if err := decodeJSON(w, r, &req); err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	rec, err := h.Create(r.Context(), req)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccessStatus(w, http.StatusCreated, h.View(rec))
}

func (h *Resource[Req, Rec, Res]) update(w http.ResponseWriter, r *http.Request) {
	var req Req
	if err := decodeJSON(w, r, &req); err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	rec, err := h.Update(r.Context(), pathID(r), req)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, h.View(rec))
}

func (h *Resource[Req, Rec, Res]) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Delete(r.Context(), pathID(r)); err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteNoContent(w)
}

func Workers(s *services.RecordService, logg *logger.Logger) *Resource[dto.WorkerRequest, domain.Worker, dto.WorkerResponse] {
	return &Resource[dto.WorkerRequest, domain.Worker, dto.WorkerResponse]{
		Log:  logg,
		List: s.ListWorkers,
		Get:  s.GetWorker,
		Create: func(ctx context.Context, req dto.WorkerRequest) (*domain.Worker, error) {
			return s.CreateWorker(ctx, req.Input())
		},
		Update: func(ctx context.Context, id string, req dto.WorkerRequest) (*domain.Worker, error) {
			return s.UpdateWorker(ctx, id, req.Input())
		},
		Delete: s.DeleteWorker,
		View:   dto.Worker,
	}
}

func Zones(s *services.RecordService, logg *logger.Logger) *Resource[dto.ZoneRequest, domain.Zone, dto.ZoneResponse] {
	return &Resource[dto.ZoneRequest, domain.Zone, dto.ZoneResponse]{
		Log:  logg,
		List: s.ListZones,
		Get:  s.GetZone,
		Create: func(ctx context.Context, req dto.ZoneRequest) (*domain.Zone, error) {
			return s.CreateZone(ctx, req.Input())
		},
		Update: func(ctx context.Context, id string, req dto.ZoneRequest) (*domain.Zone, error) {
			return s.UpdateZone(ctx, id, req.Input())
		},
		Delete: s.DeleteZone,
		View:   dto.Zone,
	}
}

func Routes(s *services.RecordService, logg *logger.Logger) *Resource[dto.RouteRequest, domain.Route, dto.RouteResponse] {
	return &Resource[dto.RouteRequest, domain.Route, dto.RouteResponse]{
		Log:  logg,
		List: s.ListRoutes,
		Get:  s.GetRoute,
		Create: func(ctx context.Context, req dto.RouteRequest) (*domain.Route, error) {
			return s.CreateRoute(ctx, req.Input())
		},
		Update: func(ctx context.Context, id string, req dto.RouteRequest) (*domain.Route, error) {
			return s.UpdateRoute(ctx, id, req.Input())
		},
		Delete: s.DeleteRoute,
		View:   dto.Route,
	}
}

func Vehicles(s *services.RecordService, logg *logger.Logger) *Resource[dto.VehicleRequest, domain.Vehicle, dto.VehicleResponse] {
	return &Resource[dto.VehicleRequest, domain.Vehicle, dto.VehicleResponse]{
		Log:  logg,
		List: s.ListVehicles,
		Get:  s.GetVehicle,
		Create: func(ctx context.Context, req dto.VehicleRequest) (*domain.Vehicle, error) {
			return s.CreateVehicle(ctx, req.Input())
		},
		Update: func(ctx context.Context, id string, req dto.VehicleRequest) (*domain.Vehicle, error) {
			return s.UpdateVehicle(ctx, id, req.Input())
		},
		Delete: s.DeleteVehicle,
		View:   dto.Vehicle,
	}
}

func Assignments(s *services.RecordService, logg *logger.Logger) *Resource[dto.AssignmentRequest, domain.Assignment, dto.AssignmentResponse] {
	return &Resource[dto.AssignmentRequest, domain.Assignment, dto.AssignmentResponse]{
		Log:  logg,
		List: s.ListAssignments,
		Get:  s.GetAssignment,
		Create: func(ctx context.Context, req dto.AssignmentRequest) (*domain.Assignment, error) {
			return s.CreateAssignment(ctx, req.Input())
		},
		Update: func(ctx context.Context, id string, req dto.AssignmentRequest) (*domain.Assignment, error) {
			return s.UpdateAssignment(ctx, id, req.Input())
		},
		Delete: s.DeleteAssignment,
		View:   dto.Assignment,
	}
}

func CollectionLogs(s *services.RecordService, logg *logger.Logger) *Resource[dto.CollectionLogRequest, domain.CollectionLog, dto.CollectionLogResponse] {
	return &Resource[dto.CollectionLogRequest, domain.CollectionLog, dto.CollectionLogResponse]{
		Log:  logg,
		List: s.ListLogs,
		Get:  s.GetLog,
		Create: func(ctx context.Context, req dto.CollectionLogRequest) (*domain.CollectionLog, error) {
			return s.CreateLog(ctx, req.Input())
		},
		Update: func(ctx context.Context, id string, req dto.CollectionLogRequest) (*domain.CollectionLog, error) {
			return s.UpdateLog(ctx, id, req.Input())
		},
		Delete: s.DeleteLog,
		View:   dto.CollectionLog,
	}
}
