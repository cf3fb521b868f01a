package handlers

import (
	"net/http"
	"os"

	"FITZEN_BACK-END/internal/dto"
	"FITZEN_BACK-END/internal/utils"
)

// HealthHandler handles health check related requests
type HealthHandler struct {
	dataDir string
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(dataDir string) *HealthHandler {
	return &HealthHandler{dataDir: dataDir}
}

// HealthCheck handles basic health check (no storage access)
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "healthy", Message: "Fitzen API is running"})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck reports whether the data directory accepts writes
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	f, err := os.CreateTemp(h.dataDir, ".readyz-*")
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: map[string]any{"storage": err.Error()},
		})
		return
	}
	f.Close()
	os.Remove(f.Name())

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: map[string]any{"storage": "ok"},
	})
}
