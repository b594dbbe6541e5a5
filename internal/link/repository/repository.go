package repository

import (
	"context"

	"shortlink-platform/backend/internal/link/domain"
)

// Repository defines persistence for links.
type Repository interface {
	GetByCode(ctx context.Context, code string) (*domain.Link, error)
	Create(ctx context.Context, l *domain.Link) error
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*domain.Link, error)
	Delete(ctx context.Context, code string) error
	// IncrementVisits adds n to the link's visit counter. Used by the visit
	// event worker; n batches multiple events for one code.
	IncrementVisits(ctx context.Context, code string, n int64) error
}
