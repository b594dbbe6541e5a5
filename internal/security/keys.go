package security

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"os"
	"strings"
)

// ErrInvalidKey is returned when key material cannot be decoded or is not RSA.
var ErrInvalidKey = errors.New("invalid key material")

// loadKeyBytes resolves s to DER bytes. s may be inline PEM, a standalone
// base64-encoded DER blob (the usual deployment form), or a path to a PEM file.
func loadKeyBytes(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidKey
	}
	if strings.HasPrefix(s, "-----BEGIN") {
		block, _ := pem.Decode([]byte(s))
		if block == nil {
			return nil, ErrInvalidKey
		}
		return block.Bytes, nil
	}
	if der, err := base64.StdEncoding.DecodeString(s); err == nil {
		return der, nil
	}
	raw, err := os.ReadFile(s)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, ErrInvalidKey
	}
	return block.Bytes, nil
}

// ParsePrivateKey parses a PKCS#8 RSA private key. s may be inline PEM, a
// base64-encoded DER blob, or a file path. Only the identity service holds a
// private key; every other service verifies with the public key alone.
func ParsePrivateKey(s string) (*rsa.PrivateKey, error) {
	der, err := loadKeyBytes(s)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, ErrInvalidKey
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrInvalidKey
	}
	return rsaKey, nil
}

// ParsePublicKey parses a PKIX (X.509) RSA public key. s may be inline PEM, a
// base64-encoded DER blob, or a file path.
func ParsePublicKey(s string) (*rsa.PublicKey, error) {
	der, err := loadKeyBytes(s)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, ErrInvalidKey
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, ErrInvalidKey
	}
	return rsaKey, nil
}
