package services

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"spendsight/internal/config"
)

type SandboxAggregatorTestSuite struct {
	suite.Suite
	ctx        context.Context
	aggregator AggregatorClientInterface
}

func (s *SandboxAggregatorTestSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	sealKey, err := config.GenerateSealKey()
	s.Require().NoError(err)

	tokensConfig := &config.TokensConfig{
		LinkTokenDuration:   30 * time.Minute,
		PublicTokenDuration: 30 * time.Minute,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "spendsight-test",
		SealKey:             sealKey,
	}

	flowLogger := NewFlowLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.ctx = context.Background()
	s.aggregator = NewSandboxAggregator(
		&config.AggregatorConfig{MaxPageSize: 40},
		NewLinkTokenService(tokensConfig),
		NewSandboxDataService(),
		flowLogger,
	)
}

func TestSandboxAggregatorSuite(t *testing.T) {
	suite.Run(t, new(SandboxAggregatorTestSuite))
}

func (s *SandboxAggregatorTestSuite) TestFullLinkFlow() {
	linkResp, err := s.aggregator.CreateLinkToken(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(linkResp.LinkToken)
	s.True(linkResp.Expiration.After(time.Now()))

	publicResp, err := s.aggregator.CreateSandboxPublicToken(s.ctx, "ins_sandbox_1", []string{"transactions"})
	s.Require().NoError(err)
	s.NotEmpty(publicResp.PublicToken)

	exchangeResp, err := s.aggregator.ExchangePublicToken(s.ctx, publicResp.PublicToken)
	s.Require().NoError(err)
	s.True(strings.HasPrefix(exchangeResp.AccessToken, "access-"))
	s.True(strings.HasPrefix(exchangeResp.ItemID, "item-sandbox-"))

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, -1, 0)

	records, err := s.aggregator.GetTransactions(s.ctx, exchangeResp.AccessToken, start, end, 25)
	s.Require().NoError(err)
	s.Len(records, 25)

	again, err := s.aggregator.GetTransactions(s.ctx, exchangeResp.AccessToken, start, end, 25)
	s.Require().NoError(err)
	s.Equal(records, again)
}

func (s *SandboxAggregatorTestSuite) TestGetTransactions_CountDefaultsToMaxPageSize() {
	publicResp, err := s.aggregator.CreateSandboxPublicToken(s.ctx, "ins_sandbox_1", []string{"transactions"})
	s.Require().NoError(err)

	exchangeResp, err := s.aggregator.ExchangePublicToken(s.ctx, publicResp.PublicToken)
	s.Require().NoError(err)

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, -1, 0)

	s.Run("omitted count yields a full page", func() {
		records, err := s.aggregator.GetTransactions(s.ctx, exchangeResp.AccessToken, start, end, 0)
		s.Require().NoError(err)
		s.Len(records, 40)
	})

	s.Run("negative count yields a full page", func() {
		records, err := s.aggregator.GetTransactions(s.ctx, exchangeResp.AccessToken, start, end, -1)
		s.Require().NoError(err)
		s.Len(records, 40)
	})

	s.Run("oversized count is capped", func() {
		records, err := s.aggregator.GetTransactions(s.ctx, exchangeResp.AccessToken, start, end, 500)
		s.Require().NoError(err)
		s.Len(records, 40)
	})
}

func (s *SandboxAggregatorTestSuite) TestCreateSandboxPublicToken_UnknownInstitution() {
	_, err := s.aggregator.CreateSandboxPublicToken(s.ctx, "ins_not_real", nil)
	s.ErrorIs(err, ErrUnknownInstitution)
}

func (s *SandboxAggregatorTestSuite) TestExchangePublicToken_RejectsLinkToken() {
	linkResp, err := s.aggregator.CreateLinkToken(s.ctx)
	s.Require().NoError(err)

	_, err = s.aggregator.ExchangePublicToken(s.ctx, linkResp.LinkToken)
	s.ErrorIs(err, ErrInvalidTokenType)
}

func (s *SandboxAggregatorTestSuite) TestGetTransactions_BadAccessToken() {
	end := time.Now().UTC()
	start := end.AddDate(0, -1, 0)

	_, err := s.aggregator.GetTransactions(s.ctx, "access-garbage", start, end, 10)
	s.ErrorIs(err, ErrInvalidAccessToken)

	_, err = s.aggregator.GetTransactions(s.ctx, "", start, end, 10)
	s.ErrorIs(err, ErrEmptyToken)
}
