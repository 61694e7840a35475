package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewTrackingCode returns a human-readable payment tracking code:
// "LL-" + UTC date (YYYYMMDD) + "-" + 6 uppercase hex characters.
// Uniqueness is probabilistic; collisions are not checked against storage.
func NewTrackingCode(now time.Time) string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return "LL-" + now.UTC().Format("20060102") + "-" + strings.ToUpper(hex.EncodeToString(b))
}
