package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"spendsight/internal/dto"
	"spendsight/internal/errors"
	"spendsight/internal/models"
	"spendsight/internal/services"

	"github.com/labstack/echo/v4"
)

// InsightsHandler handles spending insights requests
type InsightsHandler struct {
	insights   services.InsightsServiceInterface
	flowLogger services.FlowLoggerInterface
	metrics    services.MetricsRecorderInterface
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(
	insights services.InsightsServiceInterface,
	flowLogger services.FlowLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *InsightsHandler {
	return &InsightsHandler{
		insights:   insights,
		flowLogger: flowLogger,
		metrics:    metrics,
	}
}

// ComputeInsights aggregates a transaction batch into a spending summary
// @Summary Compute spending insights
// @Description Aggregate a transaction batch into a spending total and top category breakdown
// @Tags Insights
// @Accept json
// @Produce json
// @Param request body dto.InsightsRequest true "Transaction batch and optional month filter"
// @Success 200 {object} dto.InsightsResponse "Spending summary"
// @Failure 400 {object} errors.ErrorResponse "INSIGHT_001 - Input is not a transaction sequence"
// @Router /insights [post]
func (h *InsightsHandler) ComputeInsights(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req dto.InsightsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	insights, batchSize, err := h.compute(req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidInputShape) {
			return SendError(c, errors.InsightsInvalidInput, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	duration := time.Since(startTime)
	h.flowLogger.LogInsightsComputed(ctx, batchSize, len(insights.TopCategories), duration.Milliseconds())
	h.metrics.IncrementCounter("insights.computed", nil)
	h.metrics.RecordProcessingTime("insights.computation", duration)
	h.metrics.RecordGauge("insights.batch_size", float64(batchSize), nil)

	return c.JSON(http.StatusOK, dto.NewInsightsResponse(insights))
}

// compute runs the aggregation, applying the month pre-filter only when the
// request opts in. Without a month the whole batch contributes to the totals.
func (h *InsightsHandler) compute(req dto.InsightsRequest) (*models.Insights, int, error) {
	if req.Month == "" {
		insights, err := h.insights.ComputeInsights(req.Transactions)
		return insights, batchLen(req.Transactions), err
	}

	transactions, err := h.insights.CoerceBatch(req.Transactions)
	if err != nil {
		return nil, 0, err
	}

	year, month, err := parseMonthKey(req.Month)
	if err != nil {
		return nil, 0, err
	}

	filtered := h.insights.FilterMonth(transactions, year, month)
	insights, err := h.insights.ComputeInsights(filtered)
	return insights, len(filtered), err
}

func batchLen(batch any) int {
	switch v := batch.(type) {
	case []models.Transaction:
		return len(v)
	case []models.RawRecord:
		return len(v)
	case []any:
		return len(v)
	default:
		return 0
	}
}
