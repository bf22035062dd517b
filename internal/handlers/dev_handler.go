package handlers

import (
	"net/http"

	"spendsight/internal/config"
	"spendsight/internal/services"

	"github.com/labstack/echo/v4"
)

// maxSampleRows caps the sample CSV size regardless of the query parameter.
const maxSampleRows = 1000

// DevHandler handles development-only endpoints
// These endpoints should only be available outside production
type DevHandler struct {
	cfg         *config.Config
	sandboxData services.SandboxDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(cfg *config.Config, sandboxData services.SandboxDataServiceInterface) *DevHandler {
	return &DevHandler{
		cfg:         cfg,
		sandboxData: sandboxData,
	}
}

// SampleCSV downloads a synthetic bank export for exercising the import flow
//
// Method: GET /api/v1/dev/sample-csv
// Environment: Non-production only
//
// Query parameters:
//   - rows: Number of data rows to generate (default: 25, max: 1000)
//
// Success Response: 200 OK with a text/csv attachment
//
// Error Responses:
//   - 403: Forbidden (production environment)
//   - 500: Internal server error
func (h *DevHandler) SampleCSV(c echo.Context) error {
	if h.cfg.IsProduction() {
		return echo.NewHTTPError(http.StatusForbidden, "not available in production")
	}

	rows := getIntParam(c, "rows", 25)
	if rows > maxSampleRows {
		rows = maxSampleRows
	}

	data, err := h.sandboxData.SampleCSV(rows)
	if err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", `attachment; filename="sample-transactions.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
