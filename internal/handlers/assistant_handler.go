package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"spendsight/internal/dto"
	"spendsight/internal/errors"
	"spendsight/internal/services"

	"github.com/labstack/echo/v4"
)

// AssistantHandler handles the spending assistant endpoint
type AssistantHandler struct {
	assistant services.AssistantServiceInterface
	insights  services.InsightsServiceInterface
	metrics   services.MetricsRecorderInterface
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(
	assistant services.AssistantServiceInterface,
	insights services.InsightsServiceInterface,
	metrics services.MetricsRecorderInterface,
) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		insights:  insights,
		metrics:   metrics,
	}
}

// Chat answers a spending question grounded on the submitted transactions
// @Summary Ask the spending assistant
// @Description Answer a question about spending, grounded on insights computed from the submitted batch
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question and transaction batch"
// @Success 200 {object} dto.ChatResponse "Assistant reply"
// @Failure 400 {object} errors.ErrorResponse "INSIGHT_001 - Input is not a transaction sequence"
// @Failure 502 {object} errors.ErrorResponse "ASSISTANT_001 - Assistant request failed"
// @Failure 503 {object} errors.ErrorResponse "ASSISTANT_003 - Assistant not configured"
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if !h.assistant.Enabled() {
		return SendError(c, errors.AssistantDisabled)
	}

	insights, err := h.insights.ComputeInsights(req.Transactions)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidInputShape) {
			return SendError(c, errors.InsightsInvalidInput, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	reply, err := h.assistant.Chat(ctx, req.Message, insights)
	duration := time.Since(startTime)
	h.metrics.RecordProcessingTime("assistant.request", duration)

	if err != nil {
		h.metrics.IncrementCounter("assistant.request", map[string]string{"status": "failed"})

		switch {
		case stderrors.Is(err, services.ErrAssistantDisabled):
			return SendError(c, errors.AssistantDisabled)
		case stderrors.Is(err, services.ErrAssistantUnavailable):
			return SendError(c, errors.AssistantUnavailable)
		default:
			return SendSystemError(c, err)
		}
	}

	h.metrics.IncrementCounter("assistant.request", map[string]string{"status": "success"})

	return c.JSON(http.StatusOK, dto.ChatResponse{
		Reply:   reply,
		Summary: h.assistant.SummarizeInsights(insights),
	})
}
