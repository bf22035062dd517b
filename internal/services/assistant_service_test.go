package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"spendsight/internal/config"
	"spendsight/internal/models"
)

type AssistantServiceTestSuite struct {
	suite.Suite
}

func TestAssistantServiceSuite(t *testing.T) {
	suite.Run(t, new(AssistantServiceTestSuite))
}

func (s *AssistantServiceTestSuite) newService(apiKey string) AssistantServiceInterface {
	return NewAssistantService(
		&config.AssistantConfig{APIKey: apiKey, Model: "gemini-2.0-flash", Timeout: time.Second},
		NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		NewFlowLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *AssistantServiceTestSuite) TestEnabled() {
	s.False(s.newService("").Enabled())
	s.True(s.newService("test-key").Enabled())
}

func (s *AssistantServiceTestSuite) TestChat_DisabledWithoutKey() {
	_, err := s.newService("").Chat(context.Background(), "hello", nil)
	s.ErrorIs(err, ErrAssistantDisabled)
}

func (s *AssistantServiceTestSuite) TestSummarizeInsights_NilInsights() {
	s.Equal("No spending data is available.", s.newService("k").SummarizeInsights(nil))
}

func (s *AssistantServiceTestSuite) TestSummarizeInsights_EmptyBreakdown() {
	summary := s.newService("k").SummarizeInsights(&models.Insights{
		TotalThisMonth: decimal.Zero,
		TopCategories:  []models.CategoryTotal{},
	})

	s.Equal("Total spending: $0.00. No category breakdown is available.", summary)
}

func (s *AssistantServiceTestSuite) TestSummarizeInsights_RankedBreakdown() {
	summary := s.newService("k").SummarizeInsights(&models.Insights{
		TotalThisMonth: decimal.NewFromFloat(1920.50),
		TopCategories: []models.CategoryTotal{
			{Name: "Housing", Total: decimal.NewFromInt(1800)},
			{Name: "Food", Total: decimal.NewFromFloat(120.50)},
		},
	})

	s.Equal("Total spending: $1920.50. Top categories by spend: 1. Housing $1800.00. 2. Food $120.50.", summary)
}
