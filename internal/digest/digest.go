// Package digest derives the credential digest sent in place of plaintext.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hex returns the SHA-256 digest of s in lowercase hex.
//
// The backend computes the same digest over the plaintext credential and
// compares the two, so the output must match the standard algorithm exactly.
// Digests are computed on demand right before a request and never stored.
func Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
