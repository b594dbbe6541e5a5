// Package rbac provides the per-handler authorization checks gRPC handlers
// run after the auth interceptor has (or has not) attached a principal.
package rbac

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shortlink-platform/backend/internal/auth"
)

// RequirePrincipal returns the caller's principal, or Unauthenticated when
// the call carried no valid identity.
func RequirePrincipal(ctx context.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return auth.Principal{}, status.Error(codes.Unauthenticated, "authentication required")
	}
	return p, nil
}

// RequireAdmin returns the caller's principal and ensures it holds the admin
// role. Returns Unauthenticated for anonymous callers and PermissionDenied
// for authenticated non-admins.
func RequireAdmin(ctx context.Context) (auth.Principal, error) {
	p, err := RequirePrincipal(ctx)
	if err != nil {
		return auth.Principal{}, err
	}
	if !p.IsAdmin() {
		return auth.Principal{}, status.Error(codes.PermissionDenied, "admin role required")
	}
	return p, nil
}
