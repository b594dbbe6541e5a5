// Package google verifies Google-issued ID tokens for federated login.
package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"shortlink-platform/backend/internal/identity/service"
)

const issuerURL = "https://accounts.google.com"

// ErrUnverifiedEmail rejects Google accounts whose email Google has not
// verified; such an address cannot anchor an account.
var ErrUnverifiedEmail = errors.New("google account email is not verified")

// Verifier validates Google ID tokens against Google's published keys and
// implements the session service's GoogleVerifier.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
	oauth    *oauth2.Config
}

// NewVerifier discovers Google's OIDC configuration and returns a verifier
// bound to the given OAuth client. redirectURL may be empty when only
// ID-token verification (not code exchange) is used.
func NewVerifier(ctx context.Context, clientID, clientSecret, redirectURL string) (*Verifier, error) {
	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("google oidc discovery: %w", err)
	}
	return &Verifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     googleoauth.Endpoint,
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}, nil
}

// Verify checks the raw ID token's signature, audience, issuer, and expiry,
// and extracts the identity claims the session service needs.
func (v *Verifier) Verify(ctx context.Context, rawIDToken string) (*service.GoogleIdentity, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("google id token rejected: %w", err)
	}
	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("google id token claims: %w", err)
	}
	if !claims.EmailVerified {
		return nil, ErrUnverifiedEmail
	}
	return &service.GoogleIdentity{Email: claims.Email, Name: claims.Name}, nil
}

// ExchangeCode trades an OAuth authorization code for tokens and returns the
// verified identity from the embedded ID token. Used by the browser flow,
// where the frontend hands back the code rather than the ID token itself.
func (v *Verifier) ExchangeCode(ctx context.Context, code string) (*service.GoogleIdentity, string, error) {
	tok, err := v.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, "", fmt.Errorf("google code exchange: %w", err)
	}
	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok {
		return nil, "", errors.New("google token response missing id_token")
	}
	identity, err := v.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, "", err
	}
	return identity, rawIDToken, nil
}

// AuthCodeURL returns the Google consent page URL for the given state.
func (v *Verifier) AuthCodeURL(state string) string {
	return v.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}
