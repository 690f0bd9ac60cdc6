package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a random 32-character lowercase hex string, used as the
// jti claim on issued tokens.
func NewID32() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
