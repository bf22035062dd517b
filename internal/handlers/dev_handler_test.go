package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spendsight/internal/config"
	"spendsight/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type DevHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	cfg     *config.Config
	handler *DevHandler
}

func (s *DevHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.cfg = &config.Config{}
	s.cfg.Server.Environment = "development"
	s.handler = NewDevHandler(s.cfg, services.NewSandboxDataService())
}

func TestDevHandlerSuite(t *testing.T) {
	suite.Run(t, new(DevHandlerTestSuite))
}

func (s *DevHandlerTestSuite) getSampleCSV(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.SampleCSV(c))
	return rec
}

func csvLines(body string) []string {
	return strings.Split(strings.TrimRight(body, "\n"), "\n")
}

func (s *DevHandlerTestSuite) TestSampleCSVDefaultRows() {
	rec := s.getSampleCSV("/api/v1/dev/sample-csv")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/csv", rec.Header().Get(echo.HeaderContentType))
	s.Contains(rec.Header().Get("Content-Disposition"), "sample-transactions.csv")

	lines := csvLines(rec.Body.String())
	s.Len(lines, 26)
	s.Equal("Date,Description,Amount,Category", lines[0])
}

func (s *DevHandlerTestSuite) TestSampleCSVExplicitRows() {
	rec := s.getSampleCSV("/api/v1/dev/sample-csv?rows=5")

	s.Equal(http.StatusOK, rec.Code)
	s.Len(csvLines(rec.Body.String()), 6)
}

func (s *DevHandlerTestSuite) TestSampleCSVClampsRows() {
	rec := s.getSampleCSV("/api/v1/dev/sample-csv?rows=5000")

	s.Equal(http.StatusOK, rec.Code)
	s.Len(csvLines(rec.Body.String()), 1001)
}

func (s *DevHandlerTestSuite) TestSampleCSVForbiddenInProduction() {
	s.cfg.Server.Environment = "production"

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dev/sample-csv", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.SampleCSV(c)
	s.Require().Error(err)

	httpErr, ok := err.(*echo.HTTPError)
	s.Require().True(ok)
	s.Equal(http.StatusForbidden, httpErr.Code)
}
