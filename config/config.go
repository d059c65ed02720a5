package config

import (
	"encoding/base64"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EncryptionKeyBytes is the required decoded length of DATA_ENCRYPTION_KEY (AES-256)
	EncryptionKeyBytes = 32
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Turso (remote libsql database, optional)
	TursoDatabaseURL string
	TursoAuthToken   string
	// Read-path payload encryption
	DataEncryptionKey string
	// Other
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	encryptionKey := getEnv("DATA_ENCRYPTION_KEY", "")

	// Validate encryption key - fatal in production if missing or malformed
	ValidateEncryptionKey(encryptionKey, environment)

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "db/app.db"),
		Environment:       environment,
		TursoDatabaseURL:  getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:    getEnv("TURSO_AUTH_TOKEN", ""),
		DataEncryptionKey: encryptionKey,
		AllowedOrigins:    strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// ValidateEncryptionKey checks that DATA_ENCRYPTION_KEY decodes to 32 bytes.
// The advocate-approval, case-show and procedure-list responses cannot be
// served without it, so a missing key is fatal in production and a warning
// everywhere else.
func ValidateEncryptionKey(key string, environment string) {
	if key == "" {
		if environment == "production" {
			log.Fatal("[CRITICAL] DATA_ENCRYPTION_KEY is not set. Generate one with: go run ./cmd/genkey")
		}
		log.Println("[WARNING] DATA_ENCRYPTION_KEY is not set. Encoded read responses will fail until it is configured.")
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		if environment == "production" {
			log.Fatalf("[CRITICAL] DATA_ENCRYPTION_KEY is not valid base64: %v", err)
		}
		log.Printf("[WARNING] DATA_ENCRYPTION_KEY is not valid base64: %v", err)
		return
	}

	if len(decoded) != EncryptionKeyBytes {
		if environment == "production" {
			log.Fatalf("[CRITICAL] DATA_ENCRYPTION_KEY must decode to %d bytes (got %d)", EncryptionKeyBytes, len(decoded))
		}
		log.Printf("[WARNING] DATA_ENCRYPTION_KEY must decode to %d bytes (got %d)", EncryptionKeyBytes, len(decoded))
	}
}
