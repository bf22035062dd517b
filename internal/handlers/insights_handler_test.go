package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"spendsight/internal/services"
	"spendsight/internal/services/service_mocks"
)

type InsightsHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	ctrl    *gomock.Controller
	handler *InsightsHandler
}

func TestInsightsHandlerSuite(t *testing.T) {
	suite.Run(t, new(InsightsHandlerTestSuite))
}

func (s *InsightsHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())

	flowLogger := service_mocks.NewMockFlowLoggerInterface(s.ctrl)
	flowLogger.EXPECT().LogInsightsComputed(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	insights := services.NewInsightsService(services.NewNormalizeService())
	s.handler = NewInsightsHandler(insights, flowLogger, metrics)
}

func (s *InsightsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InsightsHandlerTestSuite) postInsights(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.ComputeInsights(c)
	s.NoError(err)
	return rec
}

func (s *InsightsHandlerTestSuite) TestComputeInsights_Success() {
	body := `{"transactions": [
		{"date": "2024-03-15", "name": "Starbucks", "amount": -4.25, "category": ["Food and Drink"]},
		{"date": "2024-03-16", "name": "Rent", "amount": -1800, "category": ["Housing"]},
		{"date": "2024-03-17", "name": "Rent credit", "amount": 200, "category": ["Housing"]}
	]}`

	rec := s.postInsights(body)

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		TotalThisMonth string `json:"totalThisMonth"`
		TopCategories  []struct {
			Name  string `json:"name"`
			Total string `json:"total"`
		} `json:"topCategories"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2004.25", resp.TotalThisMonth)
	s.Len(resp.TopCategories, 2)
	s.Equal("Housing", resp.TopCategories[0].Name)
	s.Equal("2000", resp.TopCategories[0].Total)
}

func (s *InsightsHandlerTestSuite) TestComputeInsights_EmptyBatch() {
	rec := s.postInsights(`{"transactions": []}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"totalThisMonth":"0"`)
	s.Contains(rec.Body.String(), `"topCategories":[]`)
}

func (s *InsightsHandlerTestSuite) TestComputeInsights_MonthFilter() {
	body := `{"month": "2024-03", "transactions": [
		{"date": "2024-03-15", "name": "in window", "amount": -10, "category": ["Food"]},
		{"date": "2024-04-02", "name": "next month", "amount": -99, "category": ["Food"]}
	]}`

	rec := s.postInsights(body)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"totalThisMonth":"10"`)
}

func (s *InsightsHandlerTestSuite) TestComputeInsights_NonSequenceInput() {
	rec := s.postInsights(`{"transactions": "not a batch"}`)

	s.Equal(http.StatusBadRequest, rec.Code)

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("INSIGHT_001", resp.Error.Code)
}

func (s *InsightsHandlerTestSuite) TestComputeInsights_InvalidMonthKey() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(`{"month": "2024-13", "transactions": []}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.ComputeInsights(c)
	s.Error(err)
}
