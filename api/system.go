package api

import (
	"net/http"

	"dovvia/internal/services"
)

// SystemHandler serves operational endpoints.
type SystemHandler struct {
	health *services.HealthService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(health *services.HealthService) *SystemHandler {
	return &SystemHandler{health: health}
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	result := h.health.Check(r.Context())
	status := http.StatusOK
	if result.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, result, status)
}
