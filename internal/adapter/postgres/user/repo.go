// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "name", "password_hash", "banned", "banned_reason", "banned_at", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// List returns all users, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Admin updates
// ---------------------------------------------------------------------------

// UpdateEmail changes the login email. Returns domain.ErrAlreadyExists when
// another user holds the address.
func (r *Repo) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	return r.update(ctx, id, map[string]any{"email": email})
}

// UpdatePasswordHash stores a new bcrypt hash.
func (r *Repo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.update(ctx, id, map[string]any{"password_hash": hash})
}

// Ban marks the user banned with an optional reason.
func (r *Repo) Ban(ctx context.Context, id uuid.UUID, reason *string, at time.Time) error {
	return r.update(ctx, id, map[string]any{
		"banned":        true,
		"banned_reason": reason,
		"banned_at":     at,
	})
}

// Unban clears the ban flag and its metadata.
func (r *Repo) Unban(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, id, map[string]any{
		"banned":        false,
		"banned_reason": nil,
		"banned_at":     nil,
	})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) error {
	update := postgres.Builder().Update(table).
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), update)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Banned, &u.BannedReason, &u.BannedAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
