package auth

import "context"

type contextKey struct{ name string }

var (
	principalKey = contextKey{"principal"}
	tokenKey     = contextKey{"bearer_token"}
)

// WithPrincipal returns a context carrying the validated principal.
// Identity is always passed explicitly through context, never through
// package-level state.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom returns the principal from ctx and true if one was attached.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// WithBearerToken returns a context carrying the caller's raw bearer token so
// outgoing RPCs can forward it as call metadata.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// BearerTokenFrom returns the raw bearer token from ctx and true if present.
func BearerTokenFrom(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey).(string)
	return t, ok && t != ""
}
