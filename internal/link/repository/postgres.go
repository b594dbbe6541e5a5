package repository

import (
	"context"
	"database/sql"
	"errors"

	"shortlink-platform/backend/internal/link/domain"
)

const linkColumns = `id, code, target_url, owner_id, visits, created_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a link repository backed by the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByCode returns the link for code, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (*domain.Link, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE code = $1`, code)
	var l domain.Link
	err := row.Scan(&l.ID, &l.Code, &l.TargetURL, &l.OwnerID, &l.Visits, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// Create persists the link and assigns its generated id.
func (r *PostgresRepository) Create(ctx context.Context, l *domain.Link) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO links (code, target_url, owner_id, visits, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		l.Code, l.TargetURL, l.OwnerID, l.Visits, l.CreatedAt,
	).Scan(&l.ID)
}

// ListByOwner returns the owner's links, newest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*domain.Link, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+linkColumns+` FROM links
		WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Link
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.ID, &l.Code, &l.TargetURL, &l.OwnerID, &l.Visits, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// Delete removes the link with the given code.
func (r *PostgresRepository) Delete(ctx context.Context, code string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM links WHERE code = $1`, code)
	return err
}

// IncrementVisits adds n to the link's visit counter.
func (r *PostgresRepository) IncrementVisits(ctx context.Context, code string, n int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE links SET visits = visits + $2 WHERE code = $1`, code, n)
	return err
}
