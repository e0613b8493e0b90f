package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// refreshTokenBytes is the entropy of a refresh token; hex encoding doubles its length.
const refreshTokenBytes = 32

// GenerateSecureRandomString returns lengthInBytes random bytes, hex encoded.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewRefreshToken returns a raw refresh token for the client and the hash to store.
func NewRefreshToken() (raw string, hash string, err error) {
	raw, err = GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		return "", "", err
	}
	return raw, HashRefreshToken(raw), nil
}

// HashRefreshToken generates a SHA256 hash of a refresh token.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash compares a raw refresh token with its stored SHA256 hash.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return storedHash != "" && HashRefreshToken(token) == storedHash
}
