package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/user/domain"
)

const userColumns = `id, email, name, password_hash, provider, role, status, refresh_token_jti, created_at, updated_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a user repository backed by the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByEmail returns the user with the given email, or nil if not found.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// Create persists the user and assigns its generated id.
func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, name, password_hash, provider, role, status, refresh_token_jti, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		u.Email,
		sql.NullString{String: u.Name, Valid: u.Name != ""},
		sql.NullString{String: u.PasswordHash, Valid: u.PasswordHash != ""},
		string(u.Provider),
		string(u.Role),
		string(u.Status),
		jtiToNull(u.RefreshTokenJti),
		u.CreatedAt,
		u.UpdatedAt,
	).Scan(&u.ID)
}

// UpdateRefreshJti overwrites the user's current refresh jti in a single
// statement. Rotation and logout (jti == nil) use the same write, so a logout
// unconditionally invalidates any pending refresh token.
func (r *PostgresRepository) UpdateRefreshJti(ctx context.Context, userID int64, jti *string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET refresh_token_jti = $2, updated_at = $3 WHERE id = $1`,
		userID, jtiToNull(jti), time.Now().UTC())
	return err
}

// SetStatus updates the user's status.
func (r *PostgresRepository) SetStatus(ctx context.Context, userID int64, status domain.Status) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET status = $2, updated_at = $3 WHERE id = $1`,
		userID, string(status), time.Now().UTC())
	return err
}

// List returns users ordered by id with limit/offset pagination.
func (r *PostgresRepository) List(ctx context.Context, limit, offset int32) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u            domain.User
		name         sql.NullString
		passwordHash sql.NullString
		provider     string
		role         string
		status       string
		jti          sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &name, &passwordHash, &provider, &role, &status, &jti, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.Name = name.String
	u.PasswordHash = passwordHash.String
	u.Provider = domain.Provider(provider)
	u.Role = auth.ParseRole(role)
	u.Status = domain.Status(status)
	if jti.Valid {
		u.RefreshTokenJti = &jti.String
	}
	return &u, nil
}

func jtiToNull(jti *string) sql.NullString {
	if jti == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *jti, Valid: true}
}
