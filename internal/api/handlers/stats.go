package handlers

import (
	"net/http"

	"wastewise-admin-service/internal/api/dto"
	"wastewise-admin-service/internal/api/responses"
	"wastewise-admin-service/internal/platform/logger"
	"wastewise-admin-service/internal/services"
)

const maxRecentLogs = 100

type StatsHandler struct {
	Pickup *services.PickupService
	// RecentLimit is the default for ?limit on recent-logs.
	RecentLimit int
	Log         *logger.Logger
}

func (h *StatsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	s, err := h.Pickup.WeeklySummary(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.Summary(s))
}

func (h *StatsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	s, err := h.Pickup.MonthlySummary(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.Summary(s))
}

func (h *StatsHandler) RecentLogs(w http.ResponseWriter, r *http.Request) {
	def := h.RecentLimit
	if def <= 0 {
		def = services.DefaultRecentLogLimit
	}
	limit, err := queryInt(r, "limit", def, 1, maxRecentLogs)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	logs, err := h.Pickup.RecentLogs(r.Context(), limit)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.CollectionLogs(logs))
}

func (h *StatsHandler) ZoneDaily(w http.ResponseWriter, r *http.Request) {
	rng, err := queryDateRange(r)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	days, err := h.Pickup.ZoneDaily(r.Context(), pathID(r), rng)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.DailyCollections(days))
}

func (h *StatsHandler) VehicleDaily(w http.ResponseWriter, r *http.Request) {
	rng, err := queryDateRange(r)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	days, err := h.Pickup.VehicleDaily(r.Context(), pathID(r), rng)
	if err != nil {
		responses.WriteError(r.Context(), h.Log, w, err)
		return
	}
	responses.WriteSuccess(w, dto.DailyWeights(days))
}
