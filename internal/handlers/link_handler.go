package handlers

import (
	stderrors "errors"
	"net/http"

	"spendsight/internal/dto"
	"spendsight/internal/errors"
	"spendsight/internal/models"
	"spendsight/internal/services"

	"github.com/labstack/echo/v4"
)

// LinkHandler handles the bank-link token flow
type LinkHandler struct {
	aggregator services.AggregatorClientInterface
	metrics    services.MetricsRecorderInterface
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(
	aggregator services.AggregatorClientInterface,
	metrics services.MetricsRecorderInterface,
) *LinkHandler {
	return &LinkHandler{
		aggregator: aggregator,
		metrics:    metrics,
	}
}

// CreateLinkToken mints a token that authorizes starting a link flow
// @Summary Create link token
// @Description Mint a short-lived token that authorizes starting a bank link flow
// @Tags Link
// @Produce json
// @Success 200 {object} dto.CreateLinkTokenResponse "Link token"
// @Failure 502 {object} errors.ErrorResponse "AGGREGATOR_001 - Aggregator request failed"
// @Failure 503 {object} errors.ErrorResponse "AGGREGATOR_002 - Aggregator unavailable"
// @Router /link/token [post]
func (h *LinkHandler) CreateLinkToken(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.aggregator.CreateLinkToken(ctx)
	if err != nil {
		return h.sendAggregatorError(c, err)
	}

	h.metrics.IncrementCounter("link_token.issued", map[string]string{"token_type": services.TokenTypeLink})

	return c.JSON(http.StatusOK, resp)
}

// CreateSandboxPublicToken mints a public token against a test institution
// @Summary Create sandbox public token
// @Description Mint a public token for a sandbox institution, standing in for the link UI
// @Tags Link
// @Accept json
// @Produce json
// @Param request body dto.SandboxPublicTokenRequest true "Institution to link"
// @Success 200 {object} dto.SandboxPublicTokenResponse "Public token"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 422 {object} errors.ErrorResponse "LINK_004 - Unknown institution"
// @Router /link/sandbox/public-token [post]
func (h *LinkHandler) CreateSandboxPublicToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SandboxPublicTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.aggregator.CreateSandboxPublicToken(ctx, req.InstitutionID, req.InitialProducts)
	if err != nil {
		if stderrors.Is(err, services.ErrUnknownInstitution) {
			return SendError(c, errors.LinkUnknownInstitution, errors.WithDetails(req.InstitutionID))
		}
		return h.sendAggregatorError(c, err)
	}

	h.metrics.IncrementCounter("link_token.issued", map[string]string{"token_type": services.TokenTypePublic})

	return c.JSON(http.StatusOK, resp)
}

// ExchangePublicToken trades a public token for an access token and item ID
// @Summary Exchange public token
// @Description Exchange a public token for a durable access token and item ID
// @Tags Link
// @Accept json
// @Produce json
// @Param request body dto.ExchangePublicTokenRequest true "Public token to exchange"
// @Success 200 {object} dto.ExchangePublicTokenResponse "Access token and item ID"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 401 {object} errors.ErrorResponse "LINK_001 - Invalid token"
// @Failure 422 {object} errors.ErrorResponse "LINK_003 - Wrong token type"
// @Router /link/exchange [post]
func (h *LinkHandler) ExchangePublicToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ExchangePublicTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.aggregator.ExchangePublicToken(ctx, req.PublicToken)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrExpiredToken):
			return SendError(c, errors.LinkExpiredToken)
		case stderrors.Is(err, services.ErrInvalidTokenType):
			return SendError(c, errors.LinkInvalidTokenType)
		case stderrors.Is(err, services.ErrInvalidToken),
			stderrors.Is(err, services.ErrEmptyToken),
			stderrors.Is(err, services.ErrInvalidIssuer):
			return SendError(c, errors.LinkInvalidToken)
		default:
			return h.sendAggregatorError(c, err)
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// ListInstitutions lists the institutions available for linking
// @Summary List institutions
// @Description List the institutions that can be linked in the current environment
// @Tags Link
// @Produce json
// @Success 200 {object} dto.InstitutionListResponse "Available institutions"
// @Router /link/institutions [get]
func (h *LinkHandler) ListInstitutions(c echo.Context) error {
	institutions := models.SandboxInstitutions()

	out := make([]dto.InstitutionResponse, 0, len(institutions))
	for _, ins := range institutions {
		out = append(out, dto.InstitutionResponse{
			InstitutionID: ins.ID,
			Name:          ins.Name,
		})
	}

	return c.JSON(http.StatusOK, dto.InstitutionListResponse{
		Institutions: out,
		Total:        len(out),
	})
}

func (h *LinkHandler) sendAggregatorError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrAggregatorUnavailable):
		return SendError(c, errors.AggregatorUnavailable)
	case stderrors.Is(err, services.ErrAggregatorRequestFailed):
		return SendError(c, errors.AggregatorRequestFailed)
	default:
		return SendSystemError(c, err)
	}
}
