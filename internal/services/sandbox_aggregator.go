package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spendsight/internal/config"
	"spendsight/internal/dto"
	"spendsight/internal/models"

	"github.com/google/uuid"
)

var ErrUnknownInstitution = errors.New("unknown institution")

// sandboxAggregator implements the aggregator boundary entirely in-process:
// tokens are minted locally, items are sealed into access tokens, and
// transaction data is synthesized per item. No network, no persistence.
type sandboxAggregator struct {
	config      *config.AggregatorConfig
	linkTokens  LinkTokenServiceInterface
	sandboxData SandboxDataServiceInterface
	flowLogger  FlowLoggerInterface
}

// NewSandboxAggregator creates the in-process aggregator used in sandbox mode
func NewSandboxAggregator(cfg *config.AggregatorConfig, linkTokens LinkTokenServiceInterface, sandboxData SandboxDataServiceInterface, flowLogger FlowLoggerInterface) AggregatorClientInterface {
	return &sandboxAggregator{
		config:      cfg,
		linkTokens:  linkTokens,
		sandboxData: sandboxData,
		flowLogger:  flowLogger,
	}
}

// CreateLinkToken mints a link token for starting a sandbox link flow
func (s *sandboxAggregator) CreateLinkToken(ctx context.Context) (*dto.CreateLinkTokenResponse, error) {
	token, expiresAt, err := s.linkTokens.GenerateLinkToken()
	if err != nil {
		return nil, fmt.Errorf("failed to create link token: %w", err)
	}

	s.flowLogger.LogLinkTokenIssued(ctx, TokenTypeLink)

	return &dto.CreateLinkTokenResponse{
		LinkToken:  token,
		Expiration: expiresAt,
	}, nil
}

// CreateSandboxPublicToken mints a public token against a sandbox institution,
// standing in for the user-facing link UI a live aggregator would drive
func (s *sandboxAggregator) CreateSandboxPublicToken(ctx context.Context, institutionID string, products []string) (*dto.SandboxPublicTokenResponse, error) {
	if _, ok := models.FindInstitution(institutionID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstitution, institutionID)
	}

	token, expiresAt, err := s.linkTokens.GeneratePublicToken(institutionID, products)
	if err != nil {
		return nil, fmt.Errorf("failed to create public token: %w", err)
	}

	s.flowLogger.LogLinkTokenIssued(ctx, TokenTypePublic)

	return &dto.SandboxPublicTokenResponse{
		PublicToken: token,
		Expiration:  expiresAt,
	}, nil
}

// ExchangePublicToken trades a public token for a durable access token and
// item ID. The item state travels inside the sealed access token.
func (s *sandboxAggregator) ExchangePublicToken(ctx context.Context, publicToken string) (*dto.ExchangePublicTokenResponse, error) {
	claims, err := s.linkTokens.ValidatePublicToken(publicToken)
	if err != nil {
		return nil, err
	}

	item := models.ItemAccess{
		ItemID:        "item-sandbox-" + uuid.New().String(),
		InstitutionID: claims.InstitutionID,
		CreatedAt:     time.Now().UTC(),
	}

	accessToken, err := s.linkTokens.SealItemAccess(item)
	if err != nil {
		return nil, fmt.Errorf("failed to seal item access: %w", err)
	}

	s.flowLogger.LogPublicTokenExchanged(ctx, item.ItemID, item.InstitutionID)

	return &dto.ExchangePublicTokenResponse{
		AccessToken: accessToken,
		ItemID:      item.ItemID,
	}, nil
}

// GetTransactions synthesizes raw transaction records for the item behind the
// access token. The same item always yields the same records for a window.
func (s *sandboxAggregator) GetTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time, count int) ([]models.RawRecord, error) {
	start := time.Now()

	item, err := s.linkTokens.OpenItemAccess(accessToken)
	if err != nil {
		return nil, err
	}

	// Same page-size rule as the live client, so the two implementations
	// agree on an omitted or oversized count.
	if count <= 0 || count > s.config.MaxPageSize {
		count = s.config.MaxPageSize
	}

	records := s.sandboxData.GenerateRecords(item.ItemID, startDate, endDate, count)

	s.flowLogger.LogAggregatorFetch(ctx, item.ItemID, len(records), time.Since(start).Milliseconds())

	return records, nil
}
