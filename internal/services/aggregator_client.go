package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"spendsight/internal/config"
	"spendsight/internal/dto"
	"spendsight/internal/models"
)

var (
	ErrAggregatorRequestFailed = errors.New("aggregator request failed")
	ErrAggregatorUnavailable   = errors.New("aggregator unavailable")
)

type aggregatorTransport struct {
	base http.RoundTripper
}

func (t *aggregatorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "spendsight/1.0")

	return t.base.RoundTrip(req)
}

// AggregatorClient speaks HTTP to the live banking aggregator. Credentials
// travel in the request body, as the aggregator API requires.
type AggregatorClient struct {
	config     *config.AggregatorConfig
	client     *http.Client
	breaker    CircuitBreakerInterface
	flowLogger FlowLoggerInterface
	logger     *slog.Logger
}

// NewAggregatorClient creates the live aggregator client
func NewAggregatorClient(
	cfg *config.AggregatorConfig,
	breaker CircuitBreakerInterface,
	flowLogger FlowLoggerInterface,
	logger *slog.Logger,
) AggregatorClientInterface {

	transport := &aggregatorTransport{
		base: http.DefaultTransport,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	return &AggregatorClient{
		config:     cfg,
		client:     client,
		breaker:    breaker,
		flowLogger: flowLogger,
		logger:     logger,
	}
}

func (s *AggregatorClient) buildRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		s.config.BaseURL+path,
		buf,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (s *AggregatorClient) do(req *http.Request) (*http.Response, []byte, error) {
	if s.breaker.IsOpen() {
		return nil, nil, fmt.Errorf("%w: %v", ErrAggregatorUnavailable, ErrCircuitBreakerOpen)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.breaker.RecordFailure()
		s.logger.Error(
			"aggregator request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, fmt.Errorf("%w: %v", ErrAggregatorUnavailable, err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		s.breaker.RecordFailure()
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		s.breaker.RecordFailure()
	} else {
		s.breaker.RecordSuccess()
	}

	return resp, body, nil
}

func (s *AggregatorClient) decodeError(statusCode int, body []byte) error {
	var errResp dto.AggregatorErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.ErrorCode == "" {
		return fmt.Errorf("%w: unexpected response (%d): %s", ErrAggregatorRequestFailed, statusCode, string(body))
	}

	s.logger.Error(
		"aggregator error response",
		"status", statusCode,
		"error_type", errResp.ErrorType,
		"error_code", errResp.ErrorCode,
		"request_id", errResp.RequestID,
	)

	if statusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s", ErrAggregatorUnavailable, errResp.ErrorMessage)
	}
	return fmt.Errorf("%w: %s", ErrAggregatorRequestFailed, errResp.ErrorMessage)
}

// CreateLinkToken asks the aggregator for a link token
func (s *AggregatorClient) CreateLinkToken(ctx context.Context) (*dto.CreateLinkTokenResponse, error) {
	req, err := s.buildRequest(ctx, http.MethodPost, "/link/token/create", dto.AggregatorLinkTokenRequest{
		ClientID:   s.config.ClientID,
		Secret:     s.config.Secret,
		ClientName: "spendsight",
		Products:   []string{"transactions"},
		Language:   "en",
	})
	if err != nil {
		return nil, err
	}

	resp, body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, s.decodeError(resp.StatusCode, body)
	}

	var success dto.AggregatorLinkTokenResponse
	if err := json.Unmarshal(body, &success); err != nil {
		return nil, fmt.Errorf("decode link token response: %w", err)
	}

	expiration, err := time.Parse(time.RFC3339, success.Expiration)
	if err != nil {
		expiration = time.Now().Add(30 * time.Minute)
	}

	s.flowLogger.LogLinkTokenIssued(ctx, TokenTypeLink)

	return &dto.CreateLinkTokenResponse{
		LinkToken:  success.LinkToken,
		Expiration: expiration,
	}, nil
}

// CreateSandboxPublicToken asks the aggregator's sandbox to mint a public
// token against a test institution
func (s *AggregatorClient) CreateSandboxPublicToken(ctx context.Context, institutionID string, products []string) (*dto.SandboxPublicTokenResponse, error) {
	if len(products) == 0 {
		products = []string{"transactions"}
	}

	req, err := s.buildRequest(ctx, http.MethodPost, "/sandbox/public_token/create", dto.AggregatorSandboxPublicTokenRequest{
		ClientID:        s.config.ClientID,
		Secret:          s.config.Secret,
		InstitutionID:   institutionID,
		InitialProducts: products,
	})
	if err != nil {
		return nil, err
	}

	resp, body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var success dto.AggregatorSandboxPublicTokenResponse
		if err := json.Unmarshal(body, &success); err != nil {
			return nil, fmt.Errorf("decode public token response: %w", err)
		}

		s.flowLogger.LogLinkTokenIssued(ctx, TokenTypePublic)

		return &dto.SandboxPublicTokenResponse{
			PublicToken: success.PublicToken,
			Expiration:  time.Now().Add(30 * time.Minute),
		}, nil

	case http.StatusBadRequest:
		var errResp dto.AggregatorErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.ErrorCode == "INVALID_INSTITUTION" {
			return nil, fmt.Errorf("%w: %s", ErrUnknownInstitution, institutionID)
		}
		return nil, s.decodeError(resp.StatusCode, body)

	default:
		return nil, s.decodeError(resp.StatusCode, body)
	}
}

// ExchangePublicToken trades a public token for an access token and item ID
func (s *AggregatorClient) ExchangePublicToken(ctx context.Context, publicToken string) (*dto.ExchangePublicTokenResponse, error) {
	req, err := s.buildRequest(ctx, http.MethodPost, "/item/public_token/exchange", dto.AggregatorExchangeRequest{
		ClientID:    s.config.ClientID,
		Secret:      s.config.Secret,
		PublicToken: publicToken,
	})
	if err != nil {
		return nil, err
	}

	resp, body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: exchange rejected", ErrInvalidToken)
		}
		return nil, s.decodeError(resp.StatusCode, body)
	}

	var success dto.AggregatorExchangeResponse
	if err := json.Unmarshal(body, &success); err != nil {
		return nil, fmt.Errorf("decode exchange response: %w", err)
	}

	s.flowLogger.LogPublicTokenExchanged(ctx, success.ItemID, "")

	return &dto.ExchangePublicTokenResponse{
		AccessToken: success.AccessToken,
		ItemID:      success.ItemID,
	}, nil
}

// GetTransactions pulls raw transaction records for the item behind the
// access token. Records stay untyped mappings so the normalizer downstream
// sees exactly what the aggregator sent.
func (s *AggregatorClient) GetTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time, count int) ([]models.RawRecord, error) {
	start := time.Now()

	if count <= 0 || count > s.config.MaxPageSize {
		count = s.config.MaxPageSize
	}

	req, err := s.buildRequest(ctx, http.MethodPost, "/transactions/get", dto.AggregatorTransactionsRequest{
		ClientID:    s.config.ClientID,
		Secret:      s.config.Secret,
		AccessToken: accessToken,
		StartDate:   startDate.Format("2006-01-02"),
		EndDate:     endDate.Format("2006-01-02"),
		Options: dto.AggregatorTransactionOptions{
			Count: count,
		},
	})
	if err != nil {
		return nil, err
	}

	resp, body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, ErrInvalidAccessToken
		}
		return nil, s.decodeError(resp.StatusCode, body)
	}

	var success dto.AggregatorTransactionsResponse
	if err := json.Unmarshal(body, &success); err != nil {
		return nil, fmt.Errorf("decode transactions response: %w", err)
	}

	records := make([]models.RawRecord, 0, len(success.Transactions))
	for _, txn := range success.Transactions {
		records = append(records, models.RawRecord(txn))
	}

	s.flowLogger.LogAggregatorFetch(ctx, "", len(records), time.Since(start).Milliseconds())

	return records, nil
}
