package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/identity/service"
	"shortlink-platform/backend/internal/security"
	"shortlink-platform/backend/internal/user/domain"
)

// memUserRepo is an in-memory user store for handler tests.
type memUserRepo struct {
	byID   map[int64]*domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[int64]*domain.User{}, nextID: 1}
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Create(ctx context.Context, u *domain.User) error {
	u.ID = m.nextID
	m.nextID++
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUserRepo) UpdateRefreshJti(ctx context.Context, userID int64, jti *string) error {
	u, ok := m.byID[userID]
	if !ok {
		return nil
	}
	if jti == nil {
		u.RefreshTokenJti = nil
	} else {
		v := *jti
		u.RefreshTokenJti = &v
	}
	return nil
}

// stubVerifier accepts exactly one raw ID token.
type stubVerifier struct {
	token    string
	identity *service.GoogleIdentity
}

func (s *stubVerifier) Verify(ctx context.Context, rawIDToken string) (*service.GoogleIdentity, error) {
	if rawIDToken != s.token {
		return nil, errors.New("unknown id token")
	}
	return s.identity, nil
}

// stubOAuth records exchange calls and hands back a fixed ID token.
type stubOAuth struct {
	rawIDToken string
	err        error
	exchanged  []string
}

func (s *stubOAuth) AuthCodeURL(state string) string {
	return "https://consent.example/auth?state=" + state
}

func (s *stubOAuth) ExchangeCode(ctx context.Context, code string) (*service.GoogleIdentity, string, error) {
	s.exchanged = append(s.exchanged, code)
	if s.err != nil {
		return nil, "", s.err
	}
	return nil, s.rawIDToken, nil
}

func identityMux(t *testing.T, oauth GoogleOAuth) (*http.ServeMux, *memUserRepo) {
	t.Helper()
	users := newMemUserRepo()
	verifier := &stubVerifier{
		token:    "google-id-token",
		identity: &service.GoogleIdentity{Email: "g@x.com", Name: "Gia"},
	}
	sessions := service.NewSessionService(
		users, testCodec(t, time.Hour), &staticRevocation{}, security.NewHasher(4), verifier, nil, zerolog.Nop())
	mux := http.NewServeMux()
	NewIdentityHandler(sessions, oauth, zerolog.Nop()).Register(mux)
	return mux, users
}

func TestGoogleStart_RedirectsWithState(t *testing.T) {
	mux, _ := identityMux(t, &stubOAuth{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/google", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	location := rec.Header().Get("Location")
	const prefix = "https://consent.example/auth?state="
	if !strings.HasPrefix(location, prefix) {
		t.Fatalf("Location = %q", location)
	}
	state := strings.TrimPrefix(location, prefix)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == oauthStateCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("state cookie not set")
	}
	if cookie.Value != state {
		t.Errorf("cookie state = %q, redirect state = %q", cookie.Value, state)
	}
	if !cookie.HttpOnly {
		t.Error("state cookie must be HttpOnly")
	}
}

func TestGoogleCallback_SignsIn(t *testing.T) {
	oauth := &stubOAuth{rawIDToken: "google-id-token"}
	mux, users := identityMux(t, oauth)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=s123&code=c1", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "s123"})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			Email    string `json:"email"`
			Provider string `json:"provider"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.AccessToken == "" {
		t.Error("no access token issued")
	}
	if body.User.Email != "g@x.com" || body.User.Provider != string(domain.ProviderGoogle) {
		t.Errorf("user = %+v", body.User)
	}
	if len(oauth.exchanged) != 1 || oauth.exchanged[0] != "c1" {
		t.Errorf("exchanged codes = %v, want [c1]", oauth.exchanged)
	}
	if len(users.byID) != 1 {
		t.Errorf("user rows = %d, want 1", len(users.byID))
	}
}

func TestGoogleCallback_StateMismatch(t *testing.T) {
	oauth := &stubOAuth{rawIDToken: "google-id-token"}
	mux, users := identityMux(t, oauth)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=forged&code=c1", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "s123"})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if len(oauth.exchanged) != 0 {
		t.Error("code must not be exchanged on state mismatch")
	}
	if len(users.byID) != 0 {
		t.Error("no user may be created on state mismatch")
	}
}

func TestGoogleCallback_ExchangeFailure(t *testing.T) {
	mux, _ := identityMux(t, &stubOAuth{err: errors.New("google said no")})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=s1&code=bad", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "s1"})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGoogleCallback_NotMountedWithoutOAuth(t *testing.T) {
	mux, _ := identityMux(t, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=s&code=c", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
