package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/link/domain"
	"shortlink-platform/backend/internal/link/service"
)

type memLinkRepo struct {
	byCode map[string]*domain.Link
	nextID int64
}

func newMemLinkRepo() *memLinkRepo {
	return &memLinkRepo{byCode: map[string]*domain.Link{}, nextID: 1}
}

func (m *memLinkRepo) GetByCode(ctx context.Context, code string) (*domain.Link, error) {
	l, ok := m.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (m *memLinkRepo) Create(ctx context.Context, l *domain.Link) error {
	l.ID = m.nextID
	m.nextID++
	cp := *l
	m.byCode[l.Code] = &cp
	return nil
}

func (m *memLinkRepo) ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*domain.Link, error) {
	var out []*domain.Link
	for _, l := range m.byCode {
		if l.OwnerID == ownerID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memLinkRepo) Delete(ctx context.Context, code string) error {
	delete(m.byCode, code)
	return nil
}

func linkMux(repo *memLinkRepo) *http.ServeMux {
	mux := http.NewServeMux()
	NewLinkHandler(service.NewLinkService(repo, nil, zerolog.Nop())).Register(mux)
	return mux
}

func asUser(r *http.Request, userID int64) *http.Request {
	p := auth.Principal{UserID: userID, Email: "u@x.com", Role: auth.RoleUser}
	return r.WithContext(auth.WithPrincipal(r.Context(), p))
}

func TestShortenEndpoint_RequiresAuth(t *testing.T) {
	mux := linkMux(newMemLinkRepo())
	req := httptest.NewRequest(http.MethodPost, "/api/links", strings.NewReader(`{"targetUrl":"https://example.com"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestShortenEndpoint_CreatesLink(t *testing.T) {
	repo := newMemLinkRepo()
	mux := linkMux(repo)
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/links", strings.NewReader(`{"targetUrl":"https://example.com"}`)), 7)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(repo.byCode) != 1 {
		t.Fatalf("stored %d links, want 1", len(repo.byCode))
	}
	for _, l := range repo.byCode {
		if l.OwnerID != 7 {
			t.Errorf("owner = %d, want 7", l.OwnerID)
		}
	}
}

func TestRedirectEndpoint(t *testing.T) {
	repo := newMemLinkRepo()
	repo.byCode["abc1234"] = &domain.Link{
		ID: 1, Code: "abc1234", TargetURL: "https://example.com/page",
		OwnerID: 7, CreatedAt: time.Now(),
	}
	mux := linkMux(repo)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/abc1234", nil))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://example.com/page" {
		t.Errorf("Location = %q", loc)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing1", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown code status = %d, want 404", rec.Code)
	}
}

func TestDeleteEndpoint_ForbiddenForNonOwner(t *testing.T) {
	repo := newMemLinkRepo()
	repo.byCode["abc1234"] = &domain.Link{
		ID: 1, Code: "abc1234", TargetURL: "https://example.com",
		OwnerID: 7, CreatedAt: time.Now(),
	}
	mux := linkMux(repo)

	req := asUser(httptest.NewRequest(http.MethodDelete, "/api/links/abc1234", nil), 8)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}

	req = asUser(httptest.NewRequest(http.MethodDelete, "/api/links/abc1234", nil), 7)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("owner delete status = %d, want 204", rec.Code)
	}
}
