package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/events"
	"shortlink-platform/backend/internal/link/domain"
)

type fakeLinkRepo struct {
	byCode map[string]*domain.Link
	nextID int64
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{byCode: map[string]*domain.Link{}, nextID: 1}
}

func (f *fakeLinkRepo) GetByCode(ctx context.Context, code string) (*domain.Link, error) {
	l, ok := f.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLinkRepo) Create(ctx context.Context, l *domain.Link) error {
	l.ID = f.nextID
	f.nextID++
	cp := *l
	f.byCode[l.Code] = &cp
	return nil
}

func (f *fakeLinkRepo) ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*domain.Link, error) {
	var out []*domain.Link
	for _, l := range f.byCode {
		if l.OwnerID == ownerID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeLinkRepo) Delete(ctx context.Context, code string) error {
	delete(f.byCode, code)
	return nil
}

type captureProducer struct {
	emitted []events.LinkVisited
	err     error
}

func (c *captureProducer) Emit(ctx context.Context, e events.LinkVisited) error {
	if c.err != nil {
		return c.err
	}
	c.emitted = append(c.emitted, e)
	return nil
}

func (c *captureProducer) Close() error { return nil }

var (
	owner = auth.Principal{UserID: 1, Email: "a@x.com", Role: auth.RoleUser}
	other = auth.Principal{UserID: 2, Email: "b@x.com", Role: auth.RoleUser}
	admin = auth.Principal{UserID: 3, Email: "root@x.com", Role: auth.RoleAdmin}
)

func TestShorten_CreatesOwnedLink(t *testing.T) {
	repo := newFakeLinkRepo()
	svc := NewLinkService(repo, nil, zerolog.Nop())

	link, err := svc.Shorten(context.Background(), owner, "https://example.com/page")
	if err != nil {
		t.Fatalf("Shorten: %v", err)
	}
	if len(link.Code) != codeLength {
		t.Errorf("code = %q, want %d chars", link.Code, codeLength)
	}
	if link.OwnerID != owner.UserID {
		t.Errorf("owner = %d, want %d", link.OwnerID, owner.UserID)
	}
	if repo.byCode[link.Code] == nil {
		t.Error("link not persisted")
	}
}

func TestShorten_RejectsBadURL(t *testing.T) {
	svc := NewLinkService(newFakeLinkRepo(), nil, zerolog.Nop())
	for _, target := range []string{"", "notaurl", "ftp://example.com/x", "/relative/path"} {
		if _, err := svc.Shorten(context.Background(), owner, target); err == nil {
			t.Errorf("Shorten(%q): expected error", target)
		}
	}
}

func TestResolve_EmitsVisitEvent(t *testing.T) {
	repo := newFakeLinkRepo()
	visits := &captureProducer{}
	svc := NewLinkService(repo, visits, zerolog.Nop())
	link, err := svc.Shorten(context.Background(), owner, "https://example.com")
	if err != nil {
		t.Fatalf("Shorten: %v", err)
	}

	got, err := svc.Resolve(context.Background(), link.Code, 42)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.TargetURL != "https://example.com" {
		t.Errorf("target = %q", got.TargetURL)
	}
	if len(visits.emitted) != 1 {
		t.Fatalf("emitted %d events, want 1", len(visits.emitted))
	}
	e := visits.emitted[0]
	if e.Code != link.Code || e.OwnerID != owner.UserID || e.VisitorID != 42 {
		t.Errorf("event = %+v", e)
	}
}

func TestResolve_ProducerFailureDoesNotFailResolve(t *testing.T) {
	repo := newFakeLinkRepo()
	svc := NewLinkService(repo, &captureProducer{err: errors.New("kafka down")}, zerolog.Nop())
	link, _ := svc.Shorten(context.Background(), owner, "https://example.com")

	if _, err := svc.Resolve(context.Background(), link.Code, 0); err != nil {
		t.Errorf("Resolve with failing producer: %v", err)
	}
}

func TestResolve_UnknownCode(t *testing.T) {
	svc := NewLinkService(newFakeLinkRepo(), nil, zerolog.Nop())
	if _, err := svc.Resolve(context.Background(), "missing", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve = %v, want ErrNotFound", err)
	}
}

func TestDelete_OwnershipRules(t *testing.T) {
	repo := newFakeLinkRepo()
	svc := NewLinkService(repo, nil, zerolog.Nop())
	link, _ := svc.Shorten(context.Background(), owner, "https://example.com")

	if err := svc.Delete(context.Background(), other, link.Code); !errors.Is(err, ErrForbidden) {
		t.Errorf("Delete by non-owner = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), admin, link.Code); err != nil {
		t.Errorf("Delete by admin: %v", err)
	}

	link2, _ := svc.Shorten(context.Background(), owner, "https://example.com")
	if err := svc.Delete(context.Background(), owner, link2.Code); err != nil {
		t.Errorf("Delete by owner: %v", err)
	}
	if err := svc.Delete(context.Background(), owner, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) = %v, want ErrNotFound", err)
	}
}
