package services

import (
	"context"
	"io"
	"time"

	"spendsight/internal/dto"
	"spendsight/internal/models"
)

// NormalizeServiceInterface maps source-native records into canonical Transactions
type NormalizeServiceInterface interface {
	// Normalize maps a single raw record. It fails only when raw is not a
	// mapping; every malformed field inside a mapping degrades to a default.
	Normalize(raw any, aliases models.KeyAliasTable) (models.Transaction, error)

	// NormalizeBatch folds Normalize over adapter output. It cannot fail:
	// every element of a RawRecord slice is a mapping by construction.
	NormalizeBatch(records []models.RawRecord, aliases models.KeyAliasTable) []models.Transaction
}

// InsightsServiceInterface computes derived spending metrics from a Transaction batch
type InsightsServiceInterface interface {
	// ComputeInsights aggregates a batch into an Insights summary. It fails
	// only when batch is not a sequence.
	ComputeInsights(batch any) (*models.Insights, error)

	// CoerceBatch resolves a dynamically-typed batch into canonical
	// Transactions without aggregating, for callers that pre-filter.
	CoerceBatch(batch any) ([]models.Transaction, error)

	// FilterMonth keeps transactions dated within the given calendar month.
	// Transactions with unparseable dates are kept.
	FilterMonth(transactions []models.Transaction, year int, month time.Month) []models.Transaction
}

// CSVImportServiceInterface reads delimited uploads into raw records
type CSVImportServiceInterface interface {
	// ReadRecords parses a delimited stream: first row is the header, each
	// subsequent row becomes one RawRecord keyed by header column. Returns
	// the records and the header columns in file order.
	ReadRecords(r io.Reader, maxRows int) ([]models.RawRecord, []string, error)
}

// LinkTokenServiceInterface issues and validates the bank-link token family
type LinkTokenServiceInterface interface {
	GenerateLinkToken() (string, time.Time, error)
	GeneratePublicToken(institutionID string, products []string) (string, time.Time, error)
	ValidateLinkToken(tokenString string) (*models.LinkClaims, error)
	ValidatePublicToken(tokenString string) (*models.LinkClaims, error)

	// SealItemAccess encrypts item state into an opaque access token so the
	// server holds no item store; OpenItemAccess reverses it.
	SealItemAccess(item models.ItemAccess) (string, error)
	OpenItemAccess(tokenString string) (*models.ItemAccess, error)
}

// AggregatorClientInterface is the boundary to the banking aggregator.
// The sandbox implementation synthesizes everything in-process; the live
// implementation speaks HTTP to the remote aggregator.
type AggregatorClientInterface interface {
	CreateLinkToken(ctx context.Context) (*dto.CreateLinkTokenResponse, error)
	CreateSandboxPublicToken(ctx context.Context, institutionID string, products []string) (*dto.SandboxPublicTokenResponse, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (*dto.ExchangePublicTokenResponse, error)
	GetTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time, count int) ([]models.RawRecord, error)
}

// SandboxDataServiceInterface synthesizes aggregator-shaped transaction data
type SandboxDataServiceInterface interface {
	// GenerateRecords produces aggregator-shaped raw records spread over the
	// date window, deterministic for a given item ID.
	GenerateRecords(itemID string, startDate, endDate time.Time, count int) []models.RawRecord

	// SampleCSV renders a delimited sample of synthetic transactions.
	SampleCSV(rows int) ([]byte, error)
}

// AssistantServiceInterface answers spending questions grounded on Insights
type AssistantServiceInterface interface {
	// Chat sends the user message with a rendered insights summary as
	// grounding context and returns the model reply.
	Chat(ctx context.Context, message string, insights *models.Insights) (string, error)

	// SummarizeInsights renders the textual financial summary embedded as
	// grounding context for the model.
	SummarizeInsights(insights *models.Insights) string

	// Enabled reports whether an API key is configured.
	Enabled() bool
}

// FlowLoggerInterface records structured domain events for the import,
// link, and insights flows
type FlowLoggerInterface interface {
	LogLinkTokenIssued(ctx context.Context, tokenType string)
	LogPublicTokenExchanged(ctx context.Context, itemID, institutionID string)
	LogAggregatorFetch(ctx context.Context, itemID string, recordCount int, durationMs int64)
	LogImportStarted(ctx context.Context, source, filename string)
	LogImportCompleted(ctx context.Context, source string, recordCount int, durationMs int64)
	LogImportFailed(ctx context.Context, source, errorMsg string)
	LogInsightsComputed(ctx context.Context, batchSize, categoryCount int, durationMs int64)
	LogAssistantRequest(ctx context.Context, status string, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}
