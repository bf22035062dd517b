package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// SealKeySize is the key length required by the access-token sealer.
const SealKeySize = 32

type Config struct {
	Server     ServerConfig
	Tokens     TokensConfig
	Aggregator AggregatorConfig
	Assistant  AssistantConfig
	Import     ImportConfig
	Security   SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type TokensConfig struct {
	LinkTokenDuration   time.Duration
	PublicTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
	SealKey             []byte
}

type AggregatorConfig struct {
	Environment string
	BaseURL     string
	ClientID    string
	Secret      string
	MaxPageSize int
	Timeout     time.Duration
}

type AssistantConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type ImportConfig struct {
	MaxUploadBytes int64
	MaxRows        int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Tokens: TokensConfig{
			LinkTokenDuration:   getDurationEnv("LINK_TOKEN_DURATION", 30*time.Minute),
			PublicTokenDuration: getDurationEnv("PUBLIC_TOKEN_DURATION", 30*time.Minute),
			Issuer:              getEnv("TOKEN_ISSUER", "spendsight"),
		},
		Aggregator: AggregatorConfig{
			Environment: getEnv("AGGREGATOR_ENV", "sandbox"),
			BaseURL:     getEnv("AGGREGATOR_BASE_URL", "https://sandbox.aggregator.example.com"),
			ClientID:    getEnv("AGGREGATOR_CLIENT_ID", ""),
			Secret:      getEnv("AGGREGATOR_SECRET", ""),
			MaxPageSize: getIntEnv("AGGREGATOR_MAX_PAGE_SIZE", 100),
			Timeout:     getDurationEnv("AGGREGATOR_TIMEOUT", 10*time.Second),
		},
		Assistant: AssistantConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("ASSISTANT_MODEL", "gemini-2.0-flash"),
			Timeout: getDurationEnv("ASSISTANT_TIMEOUT", 30*time.Second),
		},
		Import: ImportConfig{
			MaxUploadBytes: int64(getIntEnv("IMPORT_MAX_UPLOAD_BYTES", 5*1024*1024)),
			MaxRows:        getIntEnv("IMPORT_MAX_ROWS", 10000),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var loadTokenKeysErr error
	config.Tokens.PrivateKey, config.Tokens.PublicKey, loadTokenKeysErr = config.loadTokenKeys()
	if loadTokenKeysErr != nil {
		log.Fatal("Failed to load RSA keys:", loadTokenKeysErr)
	}

	var loadSealKeyErr error
	config.Tokens.SealKey, loadSealKeyErr = config.loadSealKey()
	if loadSealKeyErr != nil {
		log.Fatal("Failed to load seal key:", loadSealKeyErr)
	}

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadTokenKeys loads RSA keys for link/public token signing and verification
// Priority order:
// 1. If TOKEN_PRIVATE_KEY and TOKEN_PUBLIC_KEY env vars are set, use them (works in all environments)
// 2. If production and env vars missing, fail with error (production requires explicit keys)
// 3. If development/testing and env vars missing, generate new keypair (dev convenience)
func (c *Config) loadTokenKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyB64 := os.Getenv("TOKEN_PRIVATE_KEY")
	publicKeyB64 := os.Getenv("TOKEN_PUBLIC_KEY")

	if privateKeyB64 != "" && publicKeyB64 != "" {
		log.Println("Loading RSA keypair from environment variables")
		return c.loadKeysFromEnvVars(privateKeyB64, publicKeyB64)
	}

	if c.IsProduction() {
		return nil, nil, fmt.Errorf("TOKEN_PRIVATE_KEY and TOKEN_PUBLIC_KEY environment variables must be set in production environments")
	}

	log.Println("Development environment: generating new RSA keypair for tokens (consider setting TOKEN_PRIVATE_KEY and TOKEN_PUBLIC_KEY env vars to persist keys across restarts)")
	return GenerateRSAKeyPair()
}

// loadSealKey loads the symmetric key used to seal access tokens.
// Production requires an explicit base64-encoded 32-byte SEAL_KEY; development
// and testing generate a random key, which means access tokens do not survive
// a restart there.
func (c *Config) loadSealKey() ([]byte, error) {
	sealKeyB64 := os.Getenv("SEAL_KEY")

	if sealKeyB64 != "" {
		key, err := base64.StdEncoding.DecodeString(sealKeyB64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode SEAL_KEY: %w", err)
		}
		if len(key) != SealKeySize {
			return nil, fmt.Errorf("SEAL_KEY must decode to %d bytes, got %d", SealKeySize, len(key))
		}
		return key, nil
	}

	if c.IsProduction() {
		return nil, errors.New("SEAL_KEY environment variable must be set in production environments")
	}

	log.Println("Development environment: generating random seal key (access tokens will not survive restarts)")
	return GenerateSealKey()
}

// loadKeysFromEnvVars loads RSA keys from base64-encoded environment variables
func (c *Config) loadKeysFromEnvVars(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {

	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode TOKEN_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode TOKEN_PUBLIC_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return privateKey, publicKey, nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	// Split by comma and trim whitespace
	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// GenerateSealKey generates a random symmetric key for the access-token sealer
func GenerateSealKey() ([]byte, error) {
	key := make([]byte, SealKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate seal key: %w", err)
	}
	return key, nil
}

// loadRSAPrivateKey loads an RSA private key from PEM format
func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		// Fallback: PKCS8 format support for compatibility with various key generation tools
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}

		privateKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("not an RSA private key")
		}

		return privateKey, nil
	}

	return privateKey, nil
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
