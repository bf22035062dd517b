package handlers

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// defaultScalarHTML is served when no generated docs/scalar.html exists on
// disk, so /docs works out of the box pointing at the OAS3 route.
const defaultScalarHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Spendsight API Documentation</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <scalar spec-url="/docs/swagger.json"></scalar>
  <script src="https://cdn.scalar.ly/scalar/latest/bundles/scalar.standalone.js"></script>
</body>
</html>
`

// DocsHandler handles API documentation endpoints
type DocsHandler struct {
	scalarHTML    []byte
	scalarETag    string
	oas3Path      string
	docsGenerated bool
}

// NewDocsHandler creates a new documentation handler. A generated
// docs/scalar.html overrides the built-in page when present.
func NewDocsHandler() *DocsHandler {
	scalarHTML, err := os.ReadFile(filepath.Join("docs", "scalar.html"))
	if err != nil {
		scalarHTML = []byte(defaultScalarHTML)
	}

	oas3Path := filepath.Join("docs", "swagger.json")

	return &DocsHandler{
		scalarHTML:    scalarHTML,
		scalarETag:    generateETag(scalarHTML),
		oas3Path:      oas3Path,
		docsGenerated: fileExists(oas3Path),
	}
}

// ServeScalarUI serves the Scalar HTML page
// @Summary API Documentation UI
// @Description Serves the interactive Scalar documentation interface
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	c.Response().Header().Set("Expires", "0")

	if h.scalarETag != "" {
		c.Response().Header().Set("ETag", h.scalarETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.scalarETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOAS3JSON serves the OpenAPI document that Scalar loads.
func (h *DocsHandler) ServeOAS3JSON(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type")
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	c.Response().Header().Set("Content-Type", "application/json; charset=utf-8")
	return c.File(h.oas3Path)
}

// generateETag derives a strong ETag from the page contents.
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("\"%x\"", sum[:16])
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
