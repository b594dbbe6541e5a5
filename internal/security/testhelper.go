package security

import (
	"crypto/rand"
	"crypto/rsa"
	"time"
)

// NewTestTokenCodec returns a codec over a freshly generated RSA key pair.
// For unit tests only.
func NewTestTokenCodec(accessTTL, refreshTTL time.Duration) (*TokenCodec, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	return NewTokenCodec(key, &key.PublicKey, "shortlink-test", accessTTL, refreshTTL), nil
}
