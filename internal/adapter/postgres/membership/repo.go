// Package membership implements organization membership persistence using PostgreSQL.
package membership

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Repo provides membership persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new membership repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetRole returns the role of an active member. Returns domain.ErrNotFound if
// the user is not an active member of the organization.
func (r *Repo) GetRole(ctx context.Context, orgID, userID uuid.UUID) (domain.OrgRole, error) {
	sql, args, err := postgres.Builder().Select("role").From("organization_members").
		Where(squirrel.Eq{"organization_id": orgID, "user_id": userID, "is_active": true}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build sql: %w", err)
	}

	var role string
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&role); err != nil {
		return "", postgres.MapError(err, "organization_member", userID)
	}
	return domain.OrgRole(role), nil
}

// ListActiveByUsers returns the active memberships of the given users in
// active organizations, ordered by organization name.
func (r *Repo) ListActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]domain.Membership, error) {
	if len(userIDs) == 0 {
		return []domain.Membership{}, nil
	}

	sql, args, err := postgres.Builder().
		Select("m.organization_id", "o.name", "m.user_id", "m.role", "m.is_active").
		From("organization_members m").
		Join("organizations o ON o.id = m.organization_id").
		Where(squirrel.Eq{"m.user_id": userIDs, "m.is_active": true, "o.is_active": true}).
		OrderBy("o.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Membership, 0)
	for rows.Next() {
		var (
			m    domain.Membership
			role string
		)
		if err := rows.Scan(&m.OrganizationID, &m.OrganizationName, &m.UserID, &role, &m.IsActive); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		m.Role = domain.OrgRole(role)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	return result, nil
}

// Deactivate marks a membership inactive. The row is kept.
func (r *Repo) Deactivate(ctx context.Context, orgID, userID uuid.UUID) error {
	update := postgres.Builder().Update("organization_members").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"organization_id": orgID, "user_id": userID})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), update)
	if err != nil {
		return postgres.MapError(err, "organization_member", userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "organization_member", userID)
	}
	return nil
}
