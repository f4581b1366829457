package util

import (
	"crypto/sha256"
	"fmt"
)

// ContentKey returns prefix + ":" + the first 32 hex chars of sha256(b).
func ContentKey(prefix string, b []byte) string {
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%s:%x", prefix, sum[:16])
}
