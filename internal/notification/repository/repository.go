package repository

import (
	"context"

	"shortlink-platform/backend/internal/notification/domain"
)

// Repository defines persistence for notifications.
type Repository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]*domain.Notification, error)
}
