package services

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrEncryptionKeyNotSet indicates the encryption key environment variable is not configured
	ErrEncryptionKeyNotSet = errors.New("DATA_ENCRYPTION_KEY environment variable is not set")
	// ErrInvalidBlob indicates an encoded blob is malformed or too short
	ErrInvalidBlob = errors.New("invalid encoded blob")
)

// getEncryptionKey retrieves the encryption key from environment variables.
// The key must be exactly 32 bytes (256 bits) for AES-256.
func getEncryptionKey() ([]byte, error) {
	keyStr := os.Getenv("DATA_ENCRYPTION_KEY")
	if keyStr == "" {
		return nil, ErrEncryptionKeyNotSet
	}

	key, err := base64.StdEncoding.DecodeString(keyStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption key: %w", err)
	}

	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes (got %d bytes)", len(key))
	}

	return key, nil
}

// EncodeRecord serializes v to JSON and encrypts it with AES-256-GCM,
// returning a base64 blob. The advocate-approval list, case-show and
// procedure-list read paths return their payloads through this step.
func EncodeRecord(v interface{}) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize record: %w", err)
	}

	key, err := getEncryptionKey()
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	// Random nonce, prepended to the ciphertext
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecodeRecord decrypts a blob produced by EncodeRecord and unmarshals
// the JSON payload into v.
func DecodeRecord(blob string, v interface{}) error {
	key, err := getEncryptionKey()
	if err != nil {
		return err
	}

	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return fmt.Errorf("failed to decode blob: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("failed to create GCM: %w", err)
	}

	if len(data) < gcm.NonceSize() {
		return ErrInvalidBlob
	}

	nonce, cipherData := data[:gcm.NonceSize()], data[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, cipherData, nil)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	return json.Unmarshal(plaintext, v)
}

// GenerateEncryptionKey generates a new random 32-byte key for AES-256 and returns it as base64.
// Use this to generate a key for the DATA_ENCRYPTION_KEY environment variable.
func GenerateEncryptionKey() (string, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
