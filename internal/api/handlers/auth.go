package handlers

import (
	"net/http"

	"wastewise-admin-service/internal/api/dto"
	"wastewise-admin-service/internal/api/responses"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
	Log  *logger.Logger
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	res, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.Login(res))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), mustSession(r).AccessID); err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteNoContent(w)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.Auth.Me(r.Context(), mustSession(r).UserID)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.Profile(p))
}

type ThemeHandler struct {
	Themes *services.ThemeService
	Log    *logger.Logger
}

func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.Themes.Get(r.Context(), mustSession(r).UserID)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.ThemeResponse{Theme: string(t)})
}

func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	t, err := h.Themes.Toggle(r.Context(), mustSession(r).UserID)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.ThemeResponse{Theme: string(t)})
}
