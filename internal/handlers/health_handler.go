package handlers

import (
	"net/http"
	"time"

	"spendsight/internal/config"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	cfg *config.Config
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(cfg *config.Config) *HealthCheckHandler {
	return &HealthCheckHandler{cfg: cfg}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,environment=string,aggregator=string} "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	// The service holds no database or persistent connections, so health is
	// simply process liveness plus the active configuration.
	return c.JSON(http.StatusOK, map[string]string{
		"status":      "healthy",
		"time":        time.Now().UTC().Format(time.RFC3339),
		"environment": h.cfg.Server.Environment,
		"aggregator":  h.cfg.Aggregator.Environment,
	})
}
