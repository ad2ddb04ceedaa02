package handlers

import (
	"net/http"

	"wastewise-admin-service/internal/api/dto"
	"wastewise-admin-service/internal/api/responses"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/services"
)

type EstimateHandler struct {
	Estimator *services.RouteEstimator
	Log       *logger.Logger
}

// Estimate measures a route's stops and optionally writes the estimate back.
// The body is optional; an empty one estimates in path order without applying.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req dto.EstimateRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}

	opts := services.EstimateOptions{
		Optimize:      req.Optimize,
		ReturnToStart: req.ReturnToStart,
		Apply:         req.Apply,
	}
	if req.DepartAt != nil {
		opts.DepartAt = *req.DepartAt
	}

	est, err := h.Estimator.Estimate(r.Context(), pathID(r), opts)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.Estimate(est))
}
