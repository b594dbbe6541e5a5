package rbac

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shortlink-platform/backend/internal/auth"
)

func TestRequirePrincipal(t *testing.T) {
	if _, err := RequirePrincipal(context.Background()); status.Code(err) != codes.Unauthenticated {
		t.Errorf("anonymous: err = %v, want Unauthenticated", err)
	}
	ctx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 1, Role: auth.RoleUser})
	p, err := RequirePrincipal(ctx)
	if err != nil || p.UserID != 1 {
		t.Errorf("principal = %+v, err = %v", p, err)
	}
}

func TestRequireAdmin(t *testing.T) {
	if _, err := RequireAdmin(context.Background()); status.Code(err) != codes.Unauthenticated {
		t.Errorf("anonymous: err = %v, want Unauthenticated", err)
	}
	userCtx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 1, Role: auth.RoleUser})
	if _, err := RequireAdmin(userCtx); status.Code(err) != codes.PermissionDenied {
		t.Errorf("non-admin: err = %v, want PermissionDenied", err)
	}
	adminCtx := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 2, Role: auth.RoleAdmin})
	if p, err := RequireAdmin(adminCtx); err != nil || p.UserID != 2 {
		t.Errorf("admin: principal = %+v, err = %v", p, err)
	}
}
