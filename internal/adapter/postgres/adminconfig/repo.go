// Package adminconfig stores Admin Center key/value configuration in PostgreSQL.
package adminconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

const table = "admin_center_config"

// Repo provides admin_center_config persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new admin config repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetLoginCode returns the stored access code, or domain.ErrNotFound.
func (r *Repo) GetLoginCode(ctx context.Context) (*domain.AccessCode, error) {
	var code domain.AccessCode
	if err := r.get(ctx, domain.AdminConfigKeyLoginCode, &code); err != nil {
		return nil, err
	}
	if code.Code == "" {
		return nil, fmt.Errorf("admin_center_config %s: %w", domain.AdminConfigKeyLoginCode, domain.ErrNotFound)
	}
	return &code, nil
}

// SaveLoginCode replaces the stored access code.
func (r *Repo) SaveLoginCode(ctx context.Context, code domain.AccessCode) error {
	return r.set(ctx, domain.AdminConfigKeyLoginCode, code, code.UpdatedAt)
}

func (r *Repo) get(ctx context.Context, key string, dst any) error {
	sql, args, err := postgres.Builder().Select("value").From(table).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build sql: %w", err)
	}

	var raw []byte
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("admin_center_config %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return postgres.MapError(err, "admin_center_config", uuid.Nil)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode admin_center_config %s: %w", key, err)
	}
	return nil
}

func (r *Repo) set(ctx context.Context, key string, value any, updatedAt time.Time) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode admin_center_config %s: %w", key, err)
	}

	insert := postgres.Builder().Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, string(raw), updatedAt).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at")

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), insert); err != nil {
		return postgres.MapError(err, "admin_center_config", uuid.Nil)
	}
	return nil
}
