// Package organization implements the Organization repository using PostgreSQL.
// Magic Extract rules are stored inside the settings JSONB document.
package organization

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

const table = "organizations"

var columns = []string{"id", "name", "slug", "owner_id", "settings", "is_active", "created_at", "updated_at"}

// rulesExpr yields the stored rule array, or an empty array when the key is
// missing or holds something other than an array.
const rulesExpr = `CASE WHEN jsonb_typeof(settings->'magic_extract_rules') = 'array'
	THEN settings->'magic_extract_rules' ELSE '[]'::jsonb END`

// Repo provides organization persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new organization repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an organization by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, query, id)
}

// GetBySlug returns an active organization by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"slug": slug, "is_active": true})
	return r.getOne(ctx, query, uuid.Nil)
}

// ListActive returns all active organizations ordered by name.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Organization, error) {
	sql, args, err := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	orgs := make([]domain.Organization, 0)
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return orgs, nil
}

// GetRules returns the organization's Magic Extract rules in stored order.
// A missing or malformed settings key yields an empty slice.
func (r *Repo) GetRules(ctx context.Context, orgID uuid.UUID) ([]domain.ExtractionRule, error) {
	sql, args, err := postgres.Builder().Select(rulesExpr).From(table).
		Where(squirrel.Eq{"id": orgID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var raw []byte
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return nil, postgres.MapError(err, "organization", orgID)
	}

	rules := make([]domain.ExtractionRule, 0)
	if err := json.Unmarshal(raw, &rules); err != nil {
		return nil, fmt.Errorf("decode magic_extract_rules of organization %s: %w", orgID, err)
	}
	return rules, nil
}

// ---------------------------------------------------------------------------
// Settings writes
// ---------------------------------------------------------------------------

// LockSettings reads the settings document with a row lock. Call it inside a
// transaction followed by UpdateSettings.
func (r *Repo) LockSettings(ctx context.Context, orgID uuid.UUID) (map[string]any, error) {
	sql, args, err := postgres.Builder().Select("settings").From(table).
		Where(squirrel.Eq{"id": orgID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	var settings map[string]any
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&settings); err != nil {
		return nil, postgres.MapError(err, "organization", orgID)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}

// UpdateSettings replaces the whole settings document.
func (r *Repo) UpdateSettings(ctx context.Context, orgID uuid.UUID, settings map[string]any) error {
	update := postgres.Builder().Update(table).
		Set("settings", settings).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": orgID})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), update)
	if err != nil {
		return postgres.MapError(err, "organization", orgID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "organization", orgID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query squirrel.SelectBuilder, id uuid.UUID) (*domain.Organization, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	org, err := scanOrganization(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "organization", id)
	}
	return &org, nil
}

func scanOrganization(row pgx.Row) (domain.Organization, error) {
	var o domain.Organization
	err := row.Scan(&o.ID, &o.Name, &o.Slug, &o.OwnerID, &o.Settings, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	if o.Settings == nil {
		o.Settings = map[string]any{}
	}
	return o, err
}
