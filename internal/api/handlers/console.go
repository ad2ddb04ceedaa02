package handlers

import (
	"net/http"

	"wastewise-admin-service/internal/api/dto"
	"wastewise-admin-service/internal/api/responses"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/services"
)

type ConsoleHandler struct {
	Console *services.ConsoleService
	Log     *logger.Logger
}

func (h *ConsoleHandler) write(w http.ResponseWriter, r *http.Request, v *services.ConsoleView, err error) {
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.Console(v))
}

func (h *ConsoleHandler) Current(w http.ResponseWriter, r *http.Request) {
	v, err := h.Console.Current(r.Context(), mustSession(r).AccessID)
	h.write(w, r, v, err)
}

func (h *ConsoleHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req dto.NavigateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	ctx := h.Log.WithField(r.Context(), "view", req.View)
	v, err := h.Console.Navigate(ctx, mustSession(r).AccessID, req.View)
	h.write(w, r, v, err)
}

func (h *ConsoleHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	v, err := h.Console.Open(r.Context(), mustSession(r).AccessID, req.Action, req.Entity, req.ID)
	h.write(w, r, v, err)
}

func (h *ConsoleHandler) Back(w http.ResponseWriter, r *http.Request) {
	v, err := h.Console.Back(r.Context(), mustSession(r).AccessID)
	h.write(w, r, v, err)
}

func (h *ConsoleHandler) Success(w http.ResponseWriter, r *http.Request) {
	v, err := h.Console.Success(r.Context(), mustSession(r).AccessID)
	h.write(w, r, v, err)
}

func (h *ConsoleHandler) Sidebar(w http.ResponseWriter, r *http.Request) {
	var req dto.SidebarRequest
	if err := decodeJSON(w, r, &req); err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	v, err := h.Console.ToggleSidebar(r.Context(), mustSession(r).AccessID, req.Sidebar)
	h.write(w, r, v, err)
}
