package security

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the SHA-256 hash of a bearer token, hex-encoded. The
// revocation store keys entries by this digest so it never holds raw tokens;
// the mapping is one-way and deterministic.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
