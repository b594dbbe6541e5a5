package auth

import "errors"

// Sentinel errors for authentication failures. Handlers collapse all of them
// to a single UNAUTHENTICATED outcome with a generic message; the distinctions
// exist for logging and tests only and must never reach end clients verbatim.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExpiredToken       = errors.New("token expired")
	ErrMalformedToken     = errors.New("malformed token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWrongTokenType     = errors.New("wrong token type")
	ErrRevokedToken       = errors.New("token revoked")
	ErrRotationMismatch   = errors.New("refresh token superseded")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrProviderMismatch   = errors.New("email registered with another provider")
	ErrStoreUnavailable   = errors.New("auth store unavailable")
)
