package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// AccountTokenBytes is the entropy used for account identifiers. A 10-byte
// token hex-encodes to a 20-character id.
const AccountTokenBytes = 10

// NewHexToken generates a cryptographically secure random token of the given
// byte length, hex encoded.
func NewHexToken(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
