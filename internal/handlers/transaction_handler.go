package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"spendsight/internal/config"
	"spendsight/internal/dto"
	"spendsight/internal/errors"
	"spendsight/internal/models"
	"spendsight/internal/services"

	"github.com/labstack/echo/v4"
)

// defaultFetchWindowDays is the lookback used when the request omits dates.
const defaultFetchWindowDays = 30

// TransactionHandler handles transaction fetch and import requests
type TransactionHandler struct {
	aggregator services.AggregatorClientInterface
	normalizer services.NormalizeServiceInterface
	csvImport  services.CSVImportServiceInterface
	importCfg  *config.ImportConfig
	flowLogger services.FlowLoggerInterface
	metrics    services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	aggregator services.AggregatorClientInterface,
	normalizer services.NormalizeServiceInterface,
	csvImport services.CSVImportServiceInterface,
	importCfg *config.ImportConfig,
	flowLogger services.FlowLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *TransactionHandler {
	return &TransactionHandler{
		aggregator: aggregator,
		normalizer: normalizer,
		csvImport:  csvImport,
		importCfg:  importCfg,
		flowLogger: flowLogger,
		metrics:    metrics,
	}
}

// FetchTransactions pulls and normalizes transactions from a linked item
// @Summary Fetch transactions
// @Description Pull transactions for a linked item and normalize them into the canonical shape
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.FetchTransactionsRequest true "Access token and date window"
// @Success 200 {object} dto.TransactionListResponse "Normalized transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 401 {object} errors.ErrorResponse "LINK_005 - Invalid access token"
// @Failure 502 {object} errors.ErrorResponse "AGGREGATOR_001 - Aggregator request failed"
// @Failure 503 {object} errors.ErrorResponse "AGGREGATOR_002 - Aggregator unavailable"
// @Router /transactions/fetch [post]
func (h *TransactionHandler) FetchTransactions(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req dto.FetchTransactionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	endDate := parseDateParam(req.EndDate, time.Now().UTC())
	startDate := parseDateParam(req.StartDate, endDate.AddDate(0, 0, -defaultFetchWindowDays))

	records, err := h.aggregator.GetTransactions(ctx, req.AccessToken, startDate, endDate, req.Count)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidAccessToken),
			stderrors.Is(err, services.ErrEmptyToken):
			return SendError(c, errors.LinkInvalidAccessToken)
		case stderrors.Is(err, services.ErrAggregatorUnavailable):
			return SendError(c, errors.AggregatorUnavailable)
		case stderrors.Is(err, services.ErrAggregatorRequestFailed):
			return SendError(c, errors.AggregatorRequestFailed)
		default:
			return SendSystemError(c, err)
		}
	}

	transactions := h.normalizer.NormalizeBatch(records, models.AggregatorAliases())

	duration := time.Since(startTime)
	h.metrics.IncrementCounter("records.normalized", map[string]string{"source": "aggregator"})
	h.metrics.RecordProcessingTime("normalize.batch", duration)

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(transactions))
}

// ImportTransactions reads an uploaded delimited file into normalized transactions
// @Summary Import transactions from CSV
// @Description Upload a delimited bank export and normalize its rows into the canonical shape
// @Tags Transactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Delimited file to import"
// @Success 200 {object} dto.ImportResponse "Normalized transactions"
// @Failure 400 {object} errors.ErrorResponse "IMPORT_001 - Missing file"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_003 - File too large"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_002 - Unreadable file"
// @Router /transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.ImportMissingFile)
	}

	h.flowLogger.LogImportStarted(ctx, "csv", fileHeader.Filename)

	if fileHeader.Size > h.importCfg.MaxUploadBytes {
		h.flowLogger.LogImportFailed(ctx, "csv", "file too large")
		h.metrics.IncrementCounter("import.failed", nil)
		return SendError(c, errors.ImportFileTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.flowLogger.LogImportFailed(ctx, "csv", err.Error())
		h.metrics.IncrementCounter("import.failed", nil)
		return SendError(c, errors.ImportUnreadableFile)
	}
	defer file.Close()

	records, columns, err := h.csvImport.ReadRecords(file, h.importCfg.MaxRows)
	if err != nil {
		h.flowLogger.LogImportFailed(ctx, "csv", err.Error())
		h.metrics.IncrementCounter("import.failed", nil)

		switch {
		case stderrors.Is(err, services.ErrTooManyRows):
			return SendError(c, errors.ImportTooManyRows)
		case stderrors.Is(err, services.ErrEmptyFile),
			stderrors.Is(err, services.ErrMalformedFile):
			return SendError(c, errors.ImportUnreadableFile)
		default:
			return SendSystemError(c, err)
		}
	}

	transactions := h.normalizer.NormalizeBatch(records, models.DelimitedAliases(columns))

	duration := time.Since(startTime)
	h.flowLogger.LogImportCompleted(ctx, "csv", len(transactions), duration.Milliseconds())
	h.metrics.IncrementCounter("import.completed", nil)
	h.metrics.IncrementCounter("records.normalized", map[string]string{"source": "csv"})
	h.metrics.RecordProcessingTime("normalize.batch", duration)

	resp := dto.ImportResponse{
		Transactions: dto.NewTransactionListResponse(transactions).Transactions,
		Total:        len(transactions),
		Columns:      columns,
	}

	return c.JSON(http.StatusOK, resp)
}
