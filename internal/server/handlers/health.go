package handlers

import (
	"net/http"

	"github.com/indusign/indusign/internal/server/response"
)

// StatusHealthy is the status reported by both health endpoints.
const StatusHealthy = "healthy"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// APIHealthResponse is the body of GET /api/health.
type APIHealthResponse struct {
	Status  string `json:"status"`
	API     string `json:"api"`
	Version string `json:"version"`
}

// HandleHealth handles GET /health.
// @Summary Health check
// @Description Health check endpoint for liveness checks
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, HealthResponse{
		Status:  StatusHealthy,
		Service: h.meta.ServiceID,
		Version: h.meta.Version,
	})
}

// HandleAPIHealth handles GET /api/health.
// @Summary API health check
// @Description Health check scoped to the API namespace
// @Tags health
// @Produce json
// @Success 200 {object} APIHealthResponse
// @Router /api/health [get].
func (h *Handlers) HandleAPIHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, APIHealthResponse{
		Status:  StatusHealthy,
		API:     h.meta.ServiceID,
		Version: h.meta.Version,
	})
}
