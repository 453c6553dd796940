package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of a plaintext
// credential. The digest is deliberately deterministic and unsalted: stored
// hashes are compared by direct equality against a fresh digest of the
// submitted password.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compares a stored digest against a candidate plaintext in
// constant time.
func VerifyPassword(storedDigest, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(storedDigest), []byte(HashPassword(candidate))) == 1
}
