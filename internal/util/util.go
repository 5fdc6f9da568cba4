// Package util holds small helpers shared across layers.
package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the lowercase hex SHA-256 digest of s.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}

// ShortCode returns the first n hex characters of the SHA-256 digest of s.
func ShortCode(s string, n int) string {
	return SHA256Hex(s)[:n]
}
