package domain

import (
	"errors"
	"time"

	"shortlink-platform/backend/internal/auth"
)

// Provider is the identity provider that owns a user's credentials.
type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderGoogle Provider = "google"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

// User is the core user entity. RefreshTokenJti is the id of the single
// currently-valid refresh token; nil means no outstanding refresh token.
type User struct {
	ID              int64
	Email           string
	Name            string
	PasswordHash    string // empty for federated accounts
	Provider        Provider
	Role            auth.Role
	Status          Status
	RefreshTokenJti *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the user for persistence and fills defaults.
func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if u.Provider == "" {
		u.Provider = ProviderLocal
	}
	if u.Role == "" {
		u.Role = auth.RoleUser
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	return nil
}

// Active reports whether the user may authenticate.
func (u *User) Active() bool {
	return u.Status == StatusActive
}
