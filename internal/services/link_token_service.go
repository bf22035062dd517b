package services

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"spendsight/internal/config"
	"spendsight/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	TokenTypeLink   = "link"
	TokenTypePublic = "public"

	// accessTokenPrefix marks sealed access tokens on the wire.
	accessTokenPrefix = "access-"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token is expired")
	ErrInvalidIssuer      = errors.New("invalid issuer")
	ErrInvalidTokenType   = errors.New("invalid token type")
	ErrEmptyToken         = errors.New("empty token")
	ErrInvalidAccessToken = errors.New("invalid access token")
)

// LinkTokenService issues and validates the bank-link token family: RS256
// JWTs for link and public tokens, and sealed symmetric blobs for access
// tokens. Sealing item state into the access token keeps the server free of
// any item store.
type LinkTokenService struct {
	config.TokensConfig
}

// NewLinkTokenService creates a new link-token service from token configuration
func NewLinkTokenService(tokensConfig *config.TokensConfig) LinkTokenServiceInterface {
	return &LinkTokenService{
		TokensConfig: *tokensConfig,
	}
}

// GenerateLinkToken issues a short-lived token that authorizes starting a link flow
func (ts *LinkTokenService) GenerateLinkToken() (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.LinkTokenDuration)

	claims := ts.buildClaims(TokenTypeLink, "", nil, now, expiresAt)
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	tokenString, err := token.SignedString(ts.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign link token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// GeneratePublicToken issues the token a completed link hands back for exchange
func (ts *LinkTokenService) GeneratePublicToken(institutionID string, products []string) (string, time.Time, error) {
	if institutionID == "" {
		return "", time.Time{}, errors.New("institution ID cannot be empty")
	}

	now := time.Now()
	expiresAt := now.Add(ts.PublicTokenDuration)

	claims := ts.buildClaims(TokenTypePublic, institutionID, products, now, expiresAt)
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	tokenString, err := token.SignedString(ts.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign public token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateLinkToken validates and parses a link token
func (ts *LinkTokenService) ValidateLinkToken(tokenString string) (*models.LinkClaims, error) {
	return ts.validateToken(tokenString, TokenTypeLink)
}

// ValidatePublicToken validates and parses a public token
func (ts *LinkTokenService) ValidatePublicToken(tokenString string) (*models.LinkClaims, error) {
	return ts.validateToken(tokenString, TokenTypePublic)
}

// SealItemAccess encrypts item state into an opaque access token
func (ts *LinkTokenService) SealItemAccess(item models.ItemAccess) (string, error) {
	aead, err := chacha20poly1305.NewX(ts.SealKey)
	if err != nil {
		return "", fmt.Errorf("failed to initialize sealer: %w", err)
	}

	plaintext, err := json.Marshal(item)
	if err != nil {
		return "", fmt.Errorf("failed to encode item access: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, plaintext, nil)
	return accessTokenPrefix + base64.RawURLEncoding.EncodeToString(sealed), nil
}

// OpenItemAccess decrypts an access token back into item state
func (ts *LinkTokenService) OpenItemAccess(tokenString string) (*models.ItemAccess, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	if !strings.HasPrefix(tokenString, accessTokenPrefix) {
		return nil, ErrInvalidAccessToken
	}

	sealed, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(tokenString, accessTokenPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccessToken, err)
	}

	aead, err := chacha20poly1305.NewX(ts.SealKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sealer: %w", err)
	}

	if len(sealed) < aead.NonceSize() {
		return nil, ErrInvalidAccessToken
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}

	var item models.ItemAccess
	if err := json.Unmarshal(plaintext, &item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccessToken, err)
	}

	return &item, nil
}

func (ts *LinkTokenService) buildClaims(tokenType, institutionID string, products []string, issuedAt, expiresAt time.Time) models.LinkClaims {
	return models.LinkClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.Issuer,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
		TokenType:     tokenType,
		InstitutionID: institutionID,
		Products:      products,
	}
}

func (ts *LinkTokenService) validateToken(tokenString string, expectedType string) (*models.LinkClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.LinkClaims{}, ts.keyFunc)
	if err != nil {
		return nil, ts.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.LinkClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if err := ts.validateClaims(claims, expectedType); err != nil {
		return nil, err
	}

	return claims, nil
}

func (ts *LinkTokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	// RS256 required per security standards for key rotation capability
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ts.PublicKey, nil
}

func (ts *LinkTokenService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}

func (ts *LinkTokenService) validateClaims(claims *models.LinkClaims, expectedType string) error {
	if claims.Issuer != ts.Issuer {
		return ErrInvalidIssuer
	}

	if claims.TokenType != expectedType {
		return ErrInvalidTokenType
	}

	return nil
}
