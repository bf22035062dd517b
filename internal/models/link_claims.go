package models

import "github.com/golang-jwt/jwt/v5"

// LinkClaims represents the custom claims carried by link and public tokens
type LinkClaims struct {
	jwt.RegisteredClaims
	TokenType     string   `json:"token_type"`
	InstitutionID string   `json:"institution_id,omitempty"`
	Products      []string `json:"products,omitempty"`
}
