package services

import (
	"context"
	"log/slog"
	"time"
)

type FlowLogger struct {
	logger *slog.Logger
}

func NewFlowLogger(logger *slog.Logger) FlowLoggerInterface {
	return &FlowLogger{
		logger: logger,
	}
}

func (fl *FlowLogger) LogLinkTokenIssued(ctx context.Context, tokenType string) {
	fl.logger.InfoContext(ctx, "link token issued",
		slog.String("event_type", "link_token_issued"),
		slog.String("token_type", tokenType),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FlowLogger) LogPublicTokenExchanged(ctx context.Context, itemID, institutionID string) {
	fl.logger.InfoContext(ctx, "public token exchanged",
		slog.String("event_type", "public_token_exchanged"),
		slog.String("item_id", itemID),
		slog.String("institution_id", institutionID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FlowLogger) LogAggregatorFetch(ctx context.Context, itemID string, recordCount int, durationMs int64) {
	fl.logger.InfoContext(ctx, "aggregator fetch",
		slog.String("event_type", "aggregator_fetch"),
		slog.String("item_id", itemID),
		slog.Int("record_count", recordCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FlowLogger) LogImportStarted(ctx context.Context, source, filename string) {
	fl.logger.InfoContext(ctx, "import started",
		slog.String("event_type", "import_started"),
		slog.String("source", source),
		slog.String("filename", filename),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FlowLogger) LogImportCompleted(ctx context.Context, source string, recordCount int, durationMs int64) {
	fl.logger.InfoContext(ctx, "import completed",
		slog.String("event_type", "import_completed"),
		slog.String("source", source),
		slog.Int("record_count", recordCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FlowLogger) LogImportFailed(ctx context.Context, source, errorMsg string) {
	fl.logger.WarnContext(ctx, "import failed",
		slog.String("event_type", "import_failed"),
		slog.String("source", source),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FlowLogger) LogInsightsComputed(ctx context.Context, batchSize, categoryCount int, durationMs int64) {
	fl.logger.InfoContext(ctx, "insights computed",
		slog.String("event_type", "insights_computed"),
		slog.Int("batch_size", batchSize),
		slog.Int("category_count", categoryCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FlowLogger) LogAssistantRequest(ctx context.Context, status string, durationMs int64) {
	fl.logger.InfoContext(ctx, "assistant request",
		slog.String("event_type", "assistant_request"),
		slog.String("status", status),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FlowLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	fl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
