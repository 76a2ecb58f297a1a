package handlers

import (
	"net/http"
	"time"
)

// HealthResponse reports service liveness.
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// default: healthy
	Status string `json:"status"`

	// Current server time, RFC 3339
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns the liveness probe handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /api/health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
