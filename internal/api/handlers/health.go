package handlers

import (
	"context"
	"net/http"
	"time"

	"wastewise-admin-service/internal/api/responses"
)

// Pinger is a dependency the health check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness plus the state of each dependency.
type HealthHandler struct {
	Checks  map[string]Pinger
	Timeout time.Duration
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	res := healthResponse{Status: "ok"}
	status := http.StatusOK
	if len(h.Checks) > 0 {
		res.Checks = make(map[string]string, len(h.Checks))
	}
	for name, p := range h.Checks {
		if err := p.Ping(ctx); err != nil {
			res.Checks[name] = err.Error()
			res.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		res.Checks[name] = "ok"
	}
	responses.WriteSuccessStatus(w, status, res)
}
