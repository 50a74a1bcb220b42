package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// Session tokens are 32 random bytes, hex encoded (64 chars).
const sessionTokenBytes = 32

var sessionTokenRegex = regexp.MustCompile(`^[a-f0-9]{64}$`)

// NewSessionToken generates an opaque session token for the browser cookie.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ValidTokenFormat reports whether a cookie value looks like a session token.
// Rejecting malformed values early avoids pointless store lookups.
func ValidTokenFormat(token string) bool {
	return sessionTokenRegex.MatchString(token)
}
