package handler

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	linkv1 "shortlink-platform/backend/api/generated/link/v1"
	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/link/domain"
	"shortlink-platform/backend/internal/link/service"
)

type fakeRepo struct {
	byCode map[string]*domain.Link
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byCode: map[string]*domain.Link{}, nextID: 1}
}

func (f *fakeRepo) GetByCode(ctx context.Context, code string) (*domain.Link, error) {
	l, ok := f.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeRepo) Create(ctx context.Context, l *domain.Link) error {
	l.ID = f.nextID
	f.nextID++
	cp := *l
	f.byCode[l.Code] = &cp
	return nil
}

func (f *fakeRepo) ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*domain.Link, error) {
	var out []*domain.Link
	for _, l := range f.byCode {
		if l.OwnerID == ownerID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, code string) error {
	delete(f.byCode, code)
	return nil
}

func newServer(repo *fakeRepo) *Server {
	return NewServer(service.NewLinkService(repo, nil, zerolog.Nop()))
}

func asUser(userID int64) context.Context {
	return auth.WithPrincipal(context.Background(), auth.Principal{UserID: userID, Role: auth.RoleUser})
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok || st.Code() != want {
		t.Fatalf("err = %v, want code %v", err, want)
	}
}

func TestShortenLink(t *testing.T) {
	srv := newServer(newFakeRepo())

	_, err := srv.ShortenLink(context.Background(), &linkv1.ShortenLinkRequest{TargetUrl: "https://example.com"})
	wantCode(t, err, codes.Unauthenticated)

	link, err := srv.ShortenLink(asUser(7), &linkv1.ShortenLinkRequest{TargetUrl: "https://example.com"})
	if err != nil {
		t.Fatalf("ShortenLink: %v", err)
	}
	if link.GetOwnerId() != 7 || link.GetCode() == "" {
		t.Errorf("link = %+v", link)
	}

	_, err = srv.ShortenLink(asUser(7), &linkv1.ShortenLinkRequest{TargetUrl: "ftp://example.com"})
	wantCode(t, err, codes.InvalidArgument)
}

func TestResolveLink(t *testing.T) {
	repo := newFakeRepo()
	repo.byCode["abc1234"] = &domain.Link{
		ID: 1, Code: "abc1234", TargetURL: "https://example.com",
		OwnerID: 7, CreatedAt: time.Now(),
	}
	srv := newServer(repo)

	// Anonymous resolution is allowed.
	got, err := srv.ResolveLink(context.Background(), &linkv1.ResolveLinkRequest{Code: "abc1234"})
	if err != nil {
		t.Fatalf("ResolveLink: %v", err)
	}
	if got.GetTargetUrl() != "https://example.com" {
		t.Errorf("target = %q", got.GetTargetUrl())
	}

	_, err = srv.ResolveLink(context.Background(), &linkv1.ResolveLinkRequest{Code: "missing"})
	wantCode(t, err, codes.NotFound)
}

func TestDeleteLink_CodeMapping(t *testing.T) {
	repo := newFakeRepo()
	repo.byCode["abc1234"] = &domain.Link{
		ID: 1, Code: "abc1234", TargetURL: "https://example.com",
		OwnerID: 7, CreatedAt: time.Now(),
	}
	srv := newServer(repo)

	_, err := srv.DeleteLink(asUser(8), &linkv1.DeleteLinkRequest{Code: "abc1234"})
	wantCode(t, err, codes.PermissionDenied)

	_, err = srv.DeleteLink(asUser(7), &linkv1.DeleteLinkRequest{Code: "missing"})
	wantCode(t, err, codes.NotFound)

	if _, err := srv.DeleteLink(asUser(7), &linkv1.DeleteLinkRequest{Code: "abc1234"}); err != nil {
		t.Fatalf("owner DeleteLink: %v", err)
	}
}
