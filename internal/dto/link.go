package dto

import "time"

// Link Request DTOs

// SandboxPublicTokenRequest represents the request payload for minting a
// sandbox public token against a test institution
type SandboxPublicTokenRequest struct {
	InstitutionID   string   `json:"institution_id" validate:"required,institution_id"`
	InitialProducts []string `json:"initial_products" validate:"omitempty,dive,link_product"`
}

// ExchangePublicTokenRequest represents the request payload for exchanging a
// public token for a durable access token
type ExchangePublicTokenRequest struct {
	PublicToken string `json:"public_token" validate:"required"`
}

// Link Response DTOs

// CreateLinkTokenResponse represents a freshly minted link token
type CreateLinkTokenResponse struct {
	LinkToken  string    `json:"link_token"`
	Expiration time.Time `json:"expiration"`
}

// SandboxPublicTokenResponse represents a freshly minted sandbox public token
type SandboxPublicTokenResponse struct {
	PublicToken string    `json:"public_token"`
	Expiration  time.Time `json:"expiration"`
}

// ExchangePublicTokenResponse represents the durable credentials returned
// from a public token exchange
type ExchangePublicTokenResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}

// InstitutionResponse represents a linkable institution
type InstitutionResponse struct {
	InstitutionID string `json:"institution_id"`
	Name          string `json:"name"`
}

// InstitutionListResponse represents the institutions available for linking
type InstitutionListResponse struct {
	Institutions []InstitutionResponse `json:"institutions"`
	Total        int                   `json:"total"`
}
