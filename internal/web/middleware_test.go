package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/security"
)

type staticRevocation struct {
	blacklisted map[string]bool
}

func (s *staticRevocation) Blacklist(ctx context.Context, token string, userID int64, expiresAt time.Time) error {
	if s.blacklisted == nil {
		s.blacklisted = map[string]bool{}
	}
	s.blacklisted[token] = true
	return nil
}

func (s *staticRevocation) IsBlacklisted(ctx context.Context, token string) bool {
	return s.blacklisted[token]
}

// echoPrincipal records what the downstream handler observed.
type echoPrincipal struct {
	called    bool
	principal *auth.Principal
	token     string
}

func (e *echoPrincipal) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.called = true
	if p, ok := auth.PrincipalFrom(r.Context()); ok {
		e.principal = &p
	}
	e.token, _ = auth.BearerTokenFrom(r.Context())
	w.WriteHeader(http.StatusOK)
}

func testCodec(t *testing.T, accessTTL time.Duration) *security.TokenCodec {
	t.Helper()
	codec, err := security.NewTestTokenCodec(accessTTL, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	return codec
}

func TestAuthenticator_ValidTokenYieldsPrincipal(t *testing.T) {
	codec := testCodec(t, time.Hour)
	token, _, err := codec.IssueAccess(7, "u@x.com", auth.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	downstream := &echoPrincipal{}
	handler := NewAuthenticator(codec, &staticRevocation{}, zerolog.Nop()).Middleware(downstream)

	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if downstream.principal == nil {
		t.Fatal("no principal reached the handler")
	}
	if downstream.principal.UserID != 7 || downstream.principal.Role != auth.RoleUser {
		t.Errorf("principal = %+v", downstream.principal)
	}
	if downstream.token != token {
		t.Error("bearer token not forwarded on context")
	}
}

func TestAuthenticator_FailSoft(t *testing.T) {
	codec := testCodec(t, time.Hour)
	expired := testCodec(t, -time.Minute)
	expiredToken, _, _ := expired.IssueAccess(7, "u@x.com", auth.RoleUser)
	refreshToken, _, _, _ := codec.IssueRefresh(7, "u@x.com", auth.RoleUser)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expiredToken},
		{"refresh token", "Bearer " + refreshToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			downstream := &echoPrincipal{}
			handler := NewAuthenticator(codec, &staticRevocation{}, zerolog.Nop()).Middleware(downstream)

			req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if !downstream.called {
				t.Fatal("middleware aborted the request, want fail-soft pass-through")
			}
			if downstream.principal != nil {
				t.Errorf("principal = %+v, want anonymous", downstream.principal)
			}
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, middleware must not write errors", rec.Code)
			}
		})
	}
}

func TestAuthenticator_RevokedTokenStaysAnonymous(t *testing.T) {
	codec := testCodec(t, time.Hour)
	token, expiresAt, _ := codec.IssueAccess(7, "u@x.com", auth.RoleUser)

	revoked := &staticRevocation{}
	if err := revoked.Blacklist(context.Background(), token, 7, expiresAt); err != nil {
		t.Fatalf("Blacklist: %v", err)
	}
	downstream := &echoPrincipal{}
	handler := NewAuthenticator(codec, revoked, zerolog.Nop()).Middleware(downstream)

	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !downstream.called {
		t.Fatal("request aborted")
	}
	if downstream.principal != nil {
		t.Error("revoked token still yielded a principal")
	}
}

func TestBearerToken_Parsing(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Token abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		got, ok := bearerToken(req)
		if got != tc.want || ok != tc.ok {
			t.Errorf("bearerToken(%q) = (%q, %v), want (%q, %v)", tc.header, got, ok, tc.want, tc.ok)
		}
	}
}
