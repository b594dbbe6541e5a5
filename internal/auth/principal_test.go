package auth

import (
	"context"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"ADMIN", RoleAdmin},
		{"ROLE_ADMIN", RoleAdmin},
		{"admin", RoleAdmin},
		{"USER", RoleUser},
		{"ROLE_USER", RoleUser},
		{"", RoleUser},
		{"unknown", RoleUser},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoleAuthority(t *testing.T) {
	if got := RoleAdmin.Authority(); got != "ROLE_ADMIN" {
		t.Errorf("Authority = %q, want ROLE_ADMIN", got)
	}
}

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := PrincipalFrom(ctx); ok {
		t.Fatal("empty context must not carry a principal")
	}
	p := Principal{UserID: 7, Email: "a@x.com", Role: RoleAdmin}
	ctx = WithPrincipal(ctx, p)
	got, ok := PrincipalFrom(ctx)
	if !ok || got != p {
		t.Errorf("PrincipalFrom = %+v, %v; want %+v, true", got, ok, p)
	}
	if !got.IsAdmin() {
		t.Error("IsAdmin = false, want true")
	}
}

func TestBearerTokenContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := BearerTokenFrom(ctx); ok {
		t.Fatal("empty context must not carry a token")
	}
	ctx = WithBearerToken(ctx, "tok")
	if got, ok := BearerTokenFrom(ctx); !ok || got != "tok" {
		t.Errorf("BearerTokenFrom = %q, %v; want tok, true", got, ok)
	}
}
