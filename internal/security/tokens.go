package security

import (
	"crypto/rsa"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shortlink-platform/backend/internal/auth"
)

// Token type claim values. Access tokens authenticate requests; refresh tokens
// are exchanged for a new pair and are never accepted as bearer credentials.
const (
	TokenTypeAuth    = "auth"
	TokenTypeRefresh = "refresh"
)

// Claims is the signed claim set carried by both token kinds.
// Refresh tokens additionally carry a jti (RegisteredClaims.ID) bound to the
// user record for rotation; access tokens have no jti.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"userId"`
	Role      string `json:"role"`
	TokenType string `json:"type"`
}

// TokenCodec signs and verifies bearer tokens with an RSA key pair (RS256).
// Verification is pure: it checks signature and expiry only. Revocation and
// rotation state are the caller's responsibility.
type TokenCodec struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenCodec returns a codec that verifies with publicKey and, when
// privateKey is non-nil, signs with it. Services without the private key can
// only verify; issuing from them returns ErrInvalidKey.
func NewTokenCodec(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, issuer string, accessTTL, refreshTTL time.Duration) *TokenCodec {
	return &TokenCodec{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccess signs a short-lived access token for the user.
func (c *TokenCodec) IssueAccess(userID int64, email string, role auth.Role) (token string, expiresAt time.Time, err error) {
	now := time.Now().UTC()
	expiresAt = now.Add(c.accessTTL)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    userID,
		Role:      string(role),
		TokenType: TokenTypeAuth,
	}
	token, err = c.sign(claims)
	return token, expiresAt, err
}

// IssueRefresh signs a refresh token with a freshly generated jti. The caller
// must store the jti on the user record; only the token matching the stored
// jti is usable for rotation.
func (c *TokenCodec) IssueRefresh(userID int64, email string, role auth.Role) (token, jti string, expiresAt time.Time, err error) {
	jti = uuid.NewString()
	now := time.Now().UTC()
	expiresAt = now.Add(c.refreshTTL)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   email,
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    userID,
		Role:      string(role),
		TokenType: TokenTypeRefresh,
	}
	token, err = c.sign(claims)
	return token, jti, expiresAt, err
}

func (c *TokenCodec) sign(claims Claims) (string, error) {
	if c.privateKey == nil {
		return "", ErrInvalidKey
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(c.privateKey)
}

// Verify checks the token's signature and expiry against the public key and
// returns its claims. Side-effect free: the same token verifies the same way
// until it expires. Failures map to the auth taxonomy so callers can apply
// uniform handling without inspecting message strings: auth.ErrExpiredToken,
// auth.ErrMalformedToken, or auth.ErrInvalidToken.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, auth.ErrInvalidToken
		}
		return c.publicKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, auth.ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, auth.ErrMalformedToken
		default:
			return nil, auth.ErrInvalidToken
		}
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, auth.ErrInvalidToken
	}
	if c.issuer != "" && claims.Issuer != c.issuer {
		return nil, auth.ErrInvalidToken
	}
	return claims, nil
}

// VerifyAccess verifies the token and additionally requires type "auth".
// A refresh token presented as a bearer credential never authenticates.
func (c *TokenCodec) VerifyAccess(tokenString string) (*Claims, error) {
	claims, err := c.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAuth {
		return nil, auth.ErrWrongTokenType
	}
	return claims, nil
}

// Principal builds the request-scoped identity from validated claims.
func (cl *Claims) Principal() auth.Principal {
	return auth.Principal{
		UserID: cl.UserID,
		Email:  cl.Subject,
		Role:   auth.ParseRole(cl.Role),
	}
}

// Expiry returns the token's expiry, or the zero time when the claim is absent.
func (cl *Claims) Expiry() time.Time {
	if cl.ExpiresAt == nil {
		return time.Time{}
	}
	return cl.ExpiresAt.Time
}
