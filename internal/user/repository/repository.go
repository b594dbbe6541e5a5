package repository

import (
	"context"

	"shortlink-platform/backend/internal/user/domain"
)

// Repository defines persistence for users. It doubles as the refresh-token
// rotation store: the single valid refresh jti lives on the user row and
// UpdateRefreshJti is the one primitive for rotation (new jti) and logout (nil).
type Repository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	// UpdateRefreshJti atomically overwrites the user's current refresh jti.
	// Passing nil clears it, invalidating any outstanding refresh token.
	UpdateRefreshJti(ctx context.Context, userID int64, jti *string) error
	SetStatus(ctx context.Context, userID int64, status domain.Status) error
	List(ctx context.Context, limit, offset int32) ([]*domain.User, error)
}
