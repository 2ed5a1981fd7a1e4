package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is the service version reported by the health endpoint.
const Version = "1.0.0"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	ModelLoaded bool   `json:"model_loaded"`
}

// HealthHandler reports service liveness and classifier readiness for
// orchestration probes.
type HealthHandler struct {
	predictor Predictor
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(predictor Predictor) *HealthHandler {
	return &HealthHandler{predictor: predictor}
}

// Health handles health check requests
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Version:     Version,
		ModelLoaded: h.predictor.Ready(),
	})
}
