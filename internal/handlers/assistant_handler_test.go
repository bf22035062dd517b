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

	"spendsight/internal/dto"
	"spendsight/internal/models"
	"spendsight/internal/services"
	"spendsight/internal/services/service_mocks"
)

type AssistantHandlerTestSuite struct {
	suite.Suite
	echo          *echo.Echo
	ctrl          *gomock.Controller
	mockAssistant *service_mocks.MockAssistantServiceInterface
	handler       *AssistantHandler
}

func TestAssistantHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssistantHandlerTestSuite))
}

func (s *AssistantHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockAssistant = service_mocks.NewMockAssistantServiceInterface(s.ctrl)

	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	insights := services.NewInsightsService(services.NewNormalizeService())
	s.handler = NewAssistantHandler(s.mockAssistant, insights, metrics)
}

func (s *AssistantHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AssistantHandlerTestSuite) postChat(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *AssistantHandlerTestSuite) TestChat_Success() {
	s.mockAssistant.EXPECT().Enabled().Return(true)
	s.mockAssistant.EXPECT().
		Chat(gomock.Any(), "Where does my money go?", gomock.Any()).
		DoAndReturn(func(_ any, _ string, insights *models.Insights) (string, error) {
			s.NotNil(insights)
			return "Mostly food.", nil
		})
	s.mockAssistant.EXPECT().
		SummarizeInsights(gomock.Any()).
		Return("Total spending: $4.25.")

	c, rec := s.postChat(`{"message": "Where does my money go?", "transactions": [
		{"date": "2024-03-15", "name": "Starbucks", "amount": -4.25, "category": ["Food"]}
	]}`)

	s.NoError(s.handler.Chat(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ChatResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Mostly food.", resp.Reply)
	s.Equal("Total spending: $4.25.", resp.Summary)
}

func (s *AssistantHandlerTestSuite) TestChat_Disabled() {
	s.mockAssistant.EXPECT().Enabled().Return(false)

	c, rec := s.postChat(`{"message": "hello", "transactions": []}`)

	s.NoError(s.handler.Chat(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("ASSISTANT_003", errorCodeFrom(&s.Suite, rec))
}

func (s *AssistantHandlerTestSuite) TestChat_NonSequenceBatch() {
	s.mockAssistant.EXPECT().Enabled().Return(true)

	c, rec := s.postChat(`{"message": "hello", "transactions": "junk"}`)

	s.NoError(s.handler.Chat(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("INSIGHT_001", errorCodeFrom(&s.Suite, rec))
}

func (s *AssistantHandlerTestSuite) TestChat_UpstreamUnavailable() {
	s.mockAssistant.EXPECT().Enabled().Return(true)
	s.mockAssistant.EXPECT().
		Chat(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", services.ErrAssistantUnavailable)

	c, rec := s.postChat(`{"message": "hello", "transactions": []}`)

	s.NoError(s.handler.Chat(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("ASSISTANT_002", errorCodeFrom(&s.Suite, rec))
}

func (s *AssistantHandlerTestSuite) TestChat_MissingMessage() {
	c, _ := s.postChat(`{"transactions": []}`)
	s.Error(s.handler.Chat(c))
}
