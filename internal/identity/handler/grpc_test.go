package handler

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authv1 "shortlink-platform/backend/api/generated/auth/v1"
	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/identity/service"
	"shortlink-platform/backend/internal/security"
	"shortlink-platform/backend/internal/user/domain"
)

type fakeUsers struct {
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	nextID  int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*domain.User{}, byID: map[int64]*domain.User{}, nextID: 1}
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Create(ctx context.Context, u *domain.User) error {
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.byEmail[u.Email] = &cp
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) UpdateRefreshJti(ctx context.Context, userID int64, jti *string) error {
	if u, ok := f.byID[userID]; ok {
		u.RefreshTokenJti = jti
		f.byEmail[u.Email] = u
	}
	return nil
}

func (f *fakeUsers) SetStatus(ctx context.Context, userID int64, st domain.Status) error {
	if u, ok := f.byID[userID]; ok {
		u.Status = st
	}
	return nil
}

func (f *fakeUsers) List(ctx context.Context, limit, offset int32) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range f.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

type noopRevocation struct{}

func (noopRevocation) Blacklist(ctx context.Context, token string, userID int64, expiresAt time.Time) error {
	return nil
}
func (noopRevocation) IsBlacklisted(ctx context.Context, token string) bool { return false }

func newAuthServer(t *testing.T) (*AuthServer, *fakeUsers) {
	t.Helper()
	codec, err := security.NewTestTokenCodec(time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTestTokenCodec: %v", err)
	}
	users := newFakeUsers()
	sessions := service.NewSessionService(users, codec, noopRevocation{}, security.NewHasher(4), nil, nil, zerolog.Nop())
	return NewAuthServer(sessions, zerolog.Nop()), users
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("err = %v, want a gRPC status", err)
	}
	if st.Code() != want {
		t.Fatalf("code = %v (%s), want %v", st.Code(), st.Message(), want)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	srv, _ := newAuthServer(t)
	ctx := context.Background()

	reg, err := srv.Register(ctx, &authv1.RegisterRequest{
		Email: "a@x.com", Password: "password123", Name: "A",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.GetUser().GetEmail() != "a@x.com" || reg.GetUser().GetRole() != "USER" {
		t.Errorf("user = %+v", reg.GetUser())
	}

	pair, err := srv.Login(ctx, &authv1.LoginRequest{Email: "a@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pair.GetAccessToken() == "" || pair.GetRefreshToken() == "" {
		t.Error("missing tokens in pair")
	}
	if pair.GetAccessExpiresAt() == nil {
		t.Error("missing access expiry")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv, _ := newAuthServer(t)
	ctx := context.Background()
	req := &authv1.RegisterRequest{Email: "a@x.com", Password: "password123"}

	if _, err := srv.Register(ctx, req); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := srv.Register(ctx, req)
	wantCode(t, err, codes.AlreadyExists)
}

func TestLogin_FailuresAreOpaque(t *testing.T) {
	srv, _ := newAuthServer(t)
	ctx := context.Background()
	if _, err := srv.Register(ctx, &authv1.RegisterRequest{Email: "a@x.com", Password: "password123"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Unknown account and wrong password must be indistinguishable.
	_, errUnknown := srv.Login(ctx, &authv1.LoginRequest{Email: "nobody@x.com", Password: "password123"})
	_, errWrong := srv.Login(ctx, &authv1.LoginRequest{Email: "a@x.com", Password: "wrong-password"})
	wantCode(t, errUnknown, codes.Unauthenticated)
	wantCode(t, errWrong, codes.Unauthenticated)

	stUnknown, _ := status.FromError(errUnknown)
	stWrong, _ := status.FromError(errWrong)
	if stUnknown.Message() != stWrong.Message() {
		t.Errorf("messages differ: %q vs %q", stUnknown.Message(), stWrong.Message())
	}
}

func TestRefresh_InvalidToken(t *testing.T) {
	srv, _ := newAuthServer(t)
	_, err := srv.Refresh(context.Background(), &authv1.RefreshRequest{RefreshToken: "not.a.token"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestLogout_RequiresAuthentication(t *testing.T) {
	srv, _ := newAuthServer(t)
	_, err := srv.Logout(context.Background(), &authv1.LogoutRequest{})
	wantCode(t, err, codes.Unauthenticated)
}

func TestLogout_ClearsSession(t *testing.T) {
	srv, users := newAuthServer(t)
	ctx := context.Background()
	if _, err := srv.Register(ctx, &authv1.RegisterRequest{Email: "a@x.com", Password: "password123"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	pair, err := srv.Login(ctx, &authv1.LoginRequest{Email: "a@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID := pair.GetUser().GetId()
	callCtx := auth.WithPrincipal(ctx, auth.Principal{UserID: userID, Email: "a@x.com", Role: auth.RoleUser})
	callCtx = auth.WithBearerToken(callCtx, pair.GetAccessToken())
	if _, err := srv.Logout(callCtx, &authv1.LogoutRequest{}); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if users.byID[userID].RefreshTokenJti != nil {
		t.Error("refresh jti not cleared on logout")
	}

	_, err = srv.Refresh(ctx, &authv1.RefreshRequest{RefreshToken: pair.GetRefreshToken()})
	wantCode(t, err, codes.Unauthenticated)
}

func TestUserServer_AdminGates(t *testing.T) {
	users := newFakeUsers()
	srv := NewUserServer(users)

	user := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 1, Role: auth.RoleUser})
	admin := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 2, Role: auth.RoleAdmin})

	_, err := srv.ListUsers(user, &authv1.ListUsersRequest{})
	wantCode(t, err, codes.PermissionDenied)

	if _, err := srv.ListUsers(admin, &authv1.ListUsersRequest{}); err != nil {
		t.Errorf("admin ListUsers: %v", err)
	}

	_, err = srv.SetUserStatus(user, &authv1.SetUserStatusRequest{UserId: 1, Status: "disabled"})
	wantCode(t, err, codes.PermissionDenied)
}

func TestUserServer_SetStatus(t *testing.T) {
	users := newFakeUsers()
	_ = users.Create(context.Background(), &domain.User{
		Email: "a@x.com", Provider: domain.ProviderLocal,
		Role: auth.RoleUser, Status: domain.StatusActive,
	})
	srv := NewUserServer(users)
	admin := auth.WithPrincipal(context.Background(), auth.Principal{UserID: 2, Role: auth.RoleAdmin})

	got, err := srv.SetUserStatus(admin, &authv1.SetUserStatusRequest{UserId: 1, Status: "disabled"})
	if err != nil {
		t.Fatalf("SetUserStatus: %v", err)
	}
	if got.GetStatus() != "disabled" {
		t.Errorf("status = %q, want disabled", got.GetStatus())
	}

	_, err = srv.SetUserStatus(admin, &authv1.SetUserStatusRequest{UserId: 1, Status: "banana"})
	wantCode(t, err, codes.InvalidArgument)

	_, err = srv.SetUserStatus(admin, &authv1.SetUserStatusRequest{UserId: 99, Status: "disabled"})
	wantCode(t, err, codes.NotFound)
}
