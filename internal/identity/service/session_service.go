// Package service implements the session lifecycle owned by the identity
// service: login, refresh rotation, and logout-triggered revocation. This is
// the only code allowed to mutate the refresh rotation state and the
// revocation store.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/revocation"
	"shortlink-platform/backend/internal/security"
	"shortlink-platform/backend/internal/user/domain"
)

// ErrEmailAlreadyRegistered is returned by Register for a taken email.
var ErrEmailAlreadyRegistered = errors.New("email already registered")

// AuthResult holds the outcome of Register, Login, GoogleLogin, or Refresh.
type AuthResult struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
	User            *domain.User
}

// UserRepo is the minimal user repository the session service needs. It is
// also the rotation store: the current refresh jti lives on the user row.
type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	UpdateRefreshJti(ctx context.Context, userID int64, jti *string) error
}

// GoogleIdentity is the subset of a verified Google ID token the service uses.
type GoogleIdentity struct {
	Email string
	Name  string
}

// GoogleVerifier validates a Google-issued ID token.
type GoogleVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*GoogleIdentity, error)
}

// Notifier records a user-facing event. Calls are best-effort; the session
// service logs and ignores failures.
type Notifier interface {
	Notify(ctx context.Context, userID int64, kind, message string)
}

// SessionService orchestrates token issuance, rotation, and revocation.
type SessionService struct {
	users    UserRepo
	tokens   *security.TokenCodec
	revoked  revocation.Store
	hasher   *security.Hasher
	google   GoogleVerifier
	notifier Notifier
	logger   zerolog.Logger
}

// NewSessionService returns a SessionService. google and notifier may be nil
// when federated login or notifications are not wired.
func NewSessionService(
	users UserRepo,
	tokens *security.TokenCodec,
	revoked revocation.Store,
	hasher *security.Hasher,
	google GoogleVerifier,
	notifier Notifier,
	logger zerolog.Logger,
) *SessionService {
	return &SessionService{
		users:    users,
		tokens:   tokens,
		revoked:  revoked,
		hasher:   hasher,
		google:   google,
		notifier: notifier,
		logger:   logger,
	}
}

// Register creates a local user. It does not issue tokens; the caller logs in
// afterwards.
func (s *SessionService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, storeErr(err)
	}
	if existing != nil {
		if existing.Provider != domain.ProviderLocal {
			return nil, auth.ErrProviderMismatch
		}
		return nil, ErrEmailAlreadyRegistered
	}
	hashed, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hashed,
		Provider:     domain.ProviderLocal,
		Role:         auth.RoleUser,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

// Login authenticates with email and password and issues a fresh token pair.
// Issuing the new refresh jti unconditionally invalidates any previously
// outstanding refresh token for the user, even one that was never used.
func (s *SessionService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, auth.ErrInvalidCredentials
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, auth.ErrInvalidCredentials
	}
	if !user.Active() {
		return nil, auth.ErrAccountDeactivated
	}
	if err := s.hasher.Compare(user.PasswordHash, []byte(password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	result, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, result, "login", "signed in with password")
	return result, nil
}

// GoogleLogin authenticates with a Google-verified ID token, creating the
// user record on first sight. An email already owned by a different provider
// is rejected rather than silently switching providers.
func (s *SessionService) GoogleLogin(ctx context.Context, rawIDToken string) (*AuthResult, error) {
	if s.google == nil {
		return nil, auth.ErrInvalidCredentials
	}
	ident, err := s.google.Verify(ctx, rawIDToken)
	if err != nil {
		s.logger.Debug().Err(err).Msg("google id token rejected")
		return nil, auth.ErrInvalidCredentials
	}
	email := normalizeEmail(ident.Email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil {
		now := time.Now().UTC()
		user = &domain.User{
			Email:     email,
			Name:      strings.TrimSpace(ident.Name),
			Provider:  domain.ProviderGoogle,
			Role:      auth.RoleUser,
			Status:    domain.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, storeErr(err)
		}
	} else if user.Provider != domain.ProviderGoogle {
		return nil, auth.ErrProviderMismatch
	}
	if !user.Active() {
		return nil, auth.ErrAccountDeactivated
	}
	result, err := s.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, result, "login", "signed in with Google")
	return result, nil
}

// Refresh exchanges a valid refresh token for a new access+refresh pair and
// rotates the stored jti. A token whose jti no longer matches the stored one
// fails with ErrRotationMismatch, even while cryptographically unexpired.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	if refreshToken == "" {
		return nil, auth.ErrInvalidToken
	}
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != security.TokenTypeRefresh {
		return nil, auth.ErrWrongTokenType
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil {
		return nil, auth.ErrInvalidToken
	}
	if !user.Active() {
		return nil, auth.ErrAccountDeactivated
	}
	if user.RefreshTokenJti == nil || *user.RefreshTokenJti != claims.ID {
		return nil, auth.ErrRotationMismatch
	}
	return s.issuePair(ctx, user)
}

// Logout blacklists the access token for its remaining lifetime and clears
// the stored refresh jti. Both writes must succeed; a failure surfaces so the
// caller does not report success with one half done.
func (s *SessionService) Logout(ctx context.Context, accessToken string, userID int64) error {
	expiresAt := time.Now().UTC()
	if claims, err := s.tokens.Verify(accessToken); err == nil {
		expiresAt = claims.Expiry()
	}
	if err := s.revoked.Blacklist(ctx, accessToken, userID, expiresAt); err != nil {
		return fmt.Errorf("%w: %v", auth.ErrStoreUnavailable, err)
	}
	if err := s.users.UpdateRefreshJti(ctx, userID, nil); err != nil {
		return storeErr(err)
	}
	if s.notifier != nil {
		s.notifier.Notify(ctx, userID, "logout", "signed out")
	}
	return nil
}

// issuePair issues a fresh access+refresh pair and stores the new refresh jti
// on the user row (rotation write).
func (s *SessionService) issuePair(ctx context.Context, user *domain.User) (*AuthResult, error) {
	refreshToken, jti, _, err := s.tokens.IssueRefresh(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	accessToken, accessExp, err := s.tokens.IssueAccess(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateRefreshJti(ctx, user.ID, &jti); err != nil {
		return nil, storeErr(err)
	}
	user.RefreshTokenJti = &jti
	return &AuthResult{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: accessExp,
		User:            user,
	}, nil
}

// notify records a best-effort event attributed to the freshly authenticated
// user, forwarding the new access token so the call authenticates downstream.
func (s *SessionService) notify(ctx context.Context, result *AuthResult, kind, message string) {
	if s.notifier == nil {
		return
	}
	ctx = auth.WithBearerToken(ctx, result.AccessToken)
	s.notifier.Notify(ctx, result.User.ID, kind, message)
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", auth.ErrStoreUnavailable, err)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
