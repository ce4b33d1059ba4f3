package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken returns a hex string of n random bytes, used for
// refresh tokens.
func GenerateRandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
