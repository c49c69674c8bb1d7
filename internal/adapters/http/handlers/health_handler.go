package handlers

import (
	"net/http"

	"github.com/planmate/planmate/internal/ports"
)

const checkHealthy = "ok"

// livenessResponse and readinessResponse are the health endpoint bodies.
type livenessResponse struct {
	Status string `json:"status"`
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It answers 200 whenever the process is
// serving requests at all.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, livenessResponse{Status: checkHealthy})
}

// Readiness handles GET /health/ready. Every registered checker runs; one
// failure turns the probe 503 and the per-check detail names the failure.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{
		Status: "ready",
		Checks: make(map[string]string, len(results)),
	}
	code := http.StatusOK

	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "not_ready"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = checkHealthy
	}

	writeJSON(w, code, resp)
}
