package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces entity identifiers and session tokens. It is a
// separate capability so tests can inject a deterministic implementation.
type IDGenerator interface {
	// NewID returns an identifier for a user, message or reminder.
	NewID() string
	// NewToken returns an opaque session token.
	NewToken() (string, error)
}

// RandomIDs is the production generator: UUIDs for entities and a
// 128-bit crypto/rand hex string for session tokens.
type RandomIDs struct{}

func (RandomIDs) NewID() string {
	return uuid.New().String()
}

func (RandomIDs) NewToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
