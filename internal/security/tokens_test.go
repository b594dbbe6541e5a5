package security

import (
	"errors"
	"strings"
	"testing"
	"time"

	"shortlink-platform/backend/internal/auth"
)

func TestIssueAccess_VerifyRoundTrip(t *testing.T) {
	codec, err := NewTestTokenCodec(15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	token, expiresAt, err := codec.IssueAccess(42, "a@x.com", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Subject != "a@x.com" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "a@x.com")
	}
	if claims.Role != "ADMIN" {
		t.Errorf("Role = %q, want %q", claims.Role, "ADMIN")
	}
	if claims.TokenType != TokenTypeAuth {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeAuth)
	}
	if claims.ID != "" {
		t.Errorf("access token carries jti %q, want none", claims.ID)
	}
	if got := claims.Expiry(); !got.Equal(expiresAt.Truncate(time.Second)) {
		t.Errorf("Expiry = %v, want %v", got, expiresAt.Truncate(time.Second))
	}
}

func TestIssueRefresh_CarriesUniqueJti(t *testing.T) {
	codec, err := NewTestTokenCodec(15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	t1, jti1, _, err := codec.IssueRefresh(1, "a@x.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	_, jti2, _, err := codec.IssueRefresh(1, "a@x.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	if jti1 == "" || jti1 == jti2 {
		t.Errorf("jti not unique: %q vs %q", jti1, jti2)
	}
	claims, err := codec.Verify(t1)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.ID != jti1 {
		t.Errorf("claims jti = %q, want %q", claims.ID, jti1)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TokenTypeRefresh)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	codec, err := NewTestTokenCodec(15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	token, _, err := codec.IssueAccess(1, "a@x.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	if _, err := codec.Verify(tampered); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("Verify(tampered) = %v, want ErrInvalidToken", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	codec, err := NewTestTokenCodec(-time.Second, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	token, _, err := codec.IssueAccess(1, "a@x.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := codec.Verify(token); !errors.Is(err, auth.ErrExpiredToken) {
		t.Errorf("Verify(expired) = %v, want ErrExpiredToken", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	codec, err := NewTestTokenCodec(15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := codec.Verify(tok); !errors.Is(err, auth.ErrMalformedToken) {
			t.Errorf("Verify(%q) = %v, want ErrMalformedToken", tok, err)
		}
	}
}

func TestVerifyAccess_RejectsRefreshToken(t *testing.T) {
	codec, err := NewTestTokenCodec(15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	refresh, _, _, err := codec.IssueRefresh(1, "a@x.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	if _, err := codec.VerifyAccess(refresh); !errors.Is(err, auth.ErrWrongTokenType) {
		t.Errorf("VerifyAccess(refresh) = %v, want ErrWrongTokenType", err)
	}
}

func TestVerify_WrongKeyPair(t *testing.T) {
	issuerCodec, err := NewTestTokenCodec(15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	otherCodec, err := NewTestTokenCodec(15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	token, _, err := issuerCodec.IssueAccess(1, "a@x.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := otherCodec.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("Verify with wrong key = %v, want ErrInvalidToken", err)
	}
}

func TestSign_WithoutPrivateKey(t *testing.T) {
	codec, err := NewTestTokenCodec(15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	verifyOnly := NewTokenCodec(nil, codec.publicKey, "shortlink-test", 15*time.Minute, 24*time.Hour)
	if _, _, err := verifyOnly.IssueAccess(1, "a@x.com", auth.RoleUser); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("IssueAccess without private key = %v, want ErrInvalidKey", err)
	}
}
