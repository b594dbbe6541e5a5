// Package handler exposes the identity service over gRPC: AuthService for
// the session lifecycle and UserService for profile and administration.
package handler

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	authv1 "shortlink-platform/backend/api/generated/auth/v1"
	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/identity/service"
	"shortlink-platform/backend/internal/platform/rbac"
	"shortlink-platform/backend/internal/user/domain"
	userrepo "shortlink-platform/backend/internal/user/repository"
)

// AuthServer implements AuthService (proto server).
type AuthServer struct {
	authv1.UnimplementedAuthServiceServer
	sessions *service.SessionService
	logger   zerolog.Logger
}

// NewAuthServer returns a new Auth gRPC server.
func NewAuthServer(sessions *service.SessionService, logger zerolog.Logger) *AuthServer {
	return &AuthServer{sessions: sessions, logger: logger}
}

// Register creates a local account.
func (s *AuthServer) Register(ctx context.Context, req *authv1.RegisterRequest) (*authv1.RegisterResponse, error) {
	user, err := s.sessions.Register(ctx, req.GetEmail(), req.GetPassword(), req.GetName())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyRegistered), errors.Is(err, auth.ErrProviderMismatch):
			return nil, status.Error(codes.AlreadyExists, "email already registered")
		case errors.Is(err, auth.ErrStoreUnavailable):
			return nil, status.Error(codes.Unavailable, "try again later")
		default:
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}
	return &authv1.RegisterResponse{User: userToProto(user)}, nil
}

// Login authenticates with email and password.
func (s *AuthServer) Login(ctx context.Context, req *authv1.LoginRequest) (*authv1.TokenPairResponse, error) {
	result, err := s.sessions.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.authFailure(err, "login")
	}
	return tokenPairToProto(result), nil
}

// GoogleLogin authenticates with a Google-verified ID token.
func (s *AuthServer) GoogleLogin(ctx context.Context, req *authv1.GoogleLoginRequest) (*authv1.TokenPairResponse, error) {
	result, err := s.sessions.GoogleLogin(ctx, req.GetIdToken())
	if err != nil {
		return nil, s.authFailure(err, "google login")
	}
	return tokenPairToProto(result), nil
}

// Refresh rotates the refresh token.
func (s *AuthServer) Refresh(ctx context.Context, req *authv1.RefreshRequest) (*authv1.TokenPairResponse, error) {
	result, err := s.sessions.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.authFailure(err, "refresh")
	}
	return tokenPairToProto(result), nil
}

// Logout blacklists the caller's access token and clears the stored refresh
// token id. Requires an authenticated principal.
func (s *AuthServer) Logout(ctx context.Context, req *authv1.LogoutRequest) (*authv1.LogoutResponse, error) {
	p, err := rbac.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	token, ok := auth.BearerTokenFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	if err := s.sessions.Logout(ctx, token, p.UserID); err != nil {
		if errors.Is(err, auth.ErrStoreUnavailable) {
			return nil, status.Error(codes.Unavailable, "logout failed, try again")
		}
		return nil, status.Error(codes.Internal, "logout failed")
	}
	return &authv1.LogoutResponse{}, nil
}

// authFailure collapses every authentication error to a single opaque
// UNAUTHENTICATED status. The internal reason is logged, never returned, so
// clients cannot enumerate accounts or providers from error messages.
func (s *AuthServer) authFailure(err error, op string) error {
	if errors.Is(err, auth.ErrStoreUnavailable) {
		return status.Error(codes.Unavailable, "try again later")
	}
	s.logger.Info().Err(err).Str("op", op).Msg("authentication rejected")
	return status.Error(codes.Unauthenticated, "authentication failed")
}

// UserServer implements UserService (proto server).
type UserServer struct {
	authv1.UnimplementedUserServiceServer
	users userrepo.Repository
}

// NewUserServer returns a new User gRPC server.
func NewUserServer(users userrepo.Repository) *UserServer {
	return &UserServer{users: users}
}

// GetProfile returns the caller's own user record.
func (s *UserServer) GetProfile(ctx context.Context, req *authv1.GetProfileRequest) (*authv1.UserSummary, error) {
	p, err := rbac.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, status.Error(codes.Internal, "user lookup failed")
	}
	if user == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	return userToProto(user), nil
}

// ListUsers pages through all users. Admin only.
func (s *UserServer) ListUsers(ctx context.Context, req *authv1.ListUsersRequest) (*authv1.ListUsersResponse, error) {
	if _, err := rbac.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	limit := req.GetLimit()
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := req.GetOffset()
	if offset < 0 {
		offset = 0
	}
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, status.Error(codes.Internal, "user list failed")
	}
	out := make([]*authv1.UserSummary, len(users))
	for i, u := range users {
		out[i] = userToProto(u)
	}
	return &authv1.ListUsersResponse{Users: out}, nil
}

// SetUserStatus activates or deactivates an account. Admin only.
func (s *UserServer) SetUserStatus(ctx context.Context, req *authv1.SetUserStatusRequest) (*authv1.UserSummary, error) {
	if _, err := rbac.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	st := domain.Status(req.GetStatus())
	if st != domain.StatusActive && st != domain.StatusDisabled {
		return nil, status.Error(codes.InvalidArgument, "status must be active or disabled")
	}
	user, err := s.users.GetByID(ctx, req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.Internal, "user lookup failed")
	}
	if user == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	if err := s.users.SetStatus(ctx, user.ID, st); err != nil {
		return nil, status.Error(codes.Internal, "status update failed")
	}
	user.Status = st
	return userToProto(user), nil
}

func userToProto(u *domain.User) *authv1.UserSummary {
	return &authv1.UserSummary{
		Id:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
		Status:   string(u.Status),
		Provider: string(u.Provider),
	}
}

func tokenPairToProto(r *service.AuthResult) *authv1.TokenPairResponse {
	return &authv1.TokenPairResponse{
		AccessToken:     r.AccessToken,
		RefreshToken:    r.RefreshToken,
		AccessExpiresAt: timestamppb.New(r.AccessExpiresAt),
		User:            userToProto(r.User),
	}
}
