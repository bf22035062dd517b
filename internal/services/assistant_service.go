package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"spendsight/internal/config"
	"spendsight/internal/models"

	"google.golang.org/genai"
)

var (
	ErrAssistantDisabled    = errors.New("assistant is not configured")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

// assistantService answers spending questions through the Gemini API,
// grounding every prompt on a rendered insights summary so the model talks
// about the user's actual numbers rather than hallucinating them.
type assistantService struct {
	config     *config.AssistantConfig
	breaker    CircuitBreakerInterface
	flowLogger FlowLoggerInterface
	logger     *slog.Logger
}

// NewAssistantService creates the Gemini-backed spending assistant
func NewAssistantService(
	cfg *config.AssistantConfig,
	breaker CircuitBreakerInterface,
	flowLogger FlowLoggerInterface,
	logger *slog.Logger,
) AssistantServiceInterface {
	return &assistantService{
		config:     cfg,
		breaker:    breaker,
		flowLogger: flowLogger,
		logger:     logger,
	}
}

// Enabled reports whether an API key is configured
func (s *assistantService) Enabled() bool {
	return s.config.APIKey != ""
}

// SummarizeInsights renders the grounding summary embedded in every prompt
func (s *assistantService) SummarizeInsights(insights *models.Insights) string {
	if insights == nil {
		return "No spending data is available."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total spending: $%s.", insights.TotalThisMonth.StringFixed(2))

	if len(insights.TopCategories) == 0 {
		sb.WriteString(" No category breakdown is available.")
		return sb.String()
	}

	sb.WriteString(" Top categories by spend:")
	for i, ct := range insights.TopCategories {
		fmt.Fprintf(&sb, " %d. %s $%s.", i+1, ct.Name, ct.Total.StringFixed(2))
	}

	return sb.String()
}

// Chat sends the user message to the model with the insights summary as context
func (s *assistantService) Chat(ctx context.Context, message string, insights *models.Insights) (string, error) {
	if !s.Enabled() {
		return "", ErrAssistantDisabled
	}

	if s.breaker.IsOpen() {
		return "", fmt.Errorf("%w: %v", ErrAssistantUnavailable, ErrCircuitBreakerOpen)
	}

	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      s.config.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		s.breaker.RecordFailure()
		s.flowLogger.LogAssistantRequest(ctx, "error", time.Since(start).Milliseconds())
		return "", fmt.Errorf("%w: create client: %v", ErrAssistantUnavailable, err)
	}

	prompt := s.buildPrompt(message, insights)

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, s.config.Model, contents, nil)
	if err != nil {
		s.breaker.RecordFailure()
		s.flowLogger.LogAssistantRequest(ctx, "error", time.Since(start).Milliseconds())
		return "", fmt.Errorf("%w: generate content: %v", ErrAssistantUnavailable, err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		s.breaker.RecordFailure()
		s.flowLogger.LogAssistantRequest(ctx, "empty", time.Since(start).Milliseconds())
		return "", fmt.Errorf("%w: empty response from model", ErrAssistantUnavailable)
	}

	s.breaker.RecordSuccess()
	s.flowLogger.LogAssistantRequest(ctx, "success", time.Since(start).Milliseconds())

	return reply, nil
}

func (s *assistantService) buildPrompt(message string, insights *models.Insights) string {
	return "You are a personal finance assistant. Answer the user's question " +
		"about their spending using only the summary below. Be concise and " +
		"concrete, and do not invent numbers that are not in the summary.\n\n" +
		"Spending summary: " + s.SummarizeInsights(insights) + "\n\n" +
		"Question: " + message
}
