// Package interaction implements the Interaction repository using PostgreSQL.
package interaction

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

var insertColumns = []string{"client_id", "type", "direction", "date", "subject", "notes", "email_id"}

// Repo provides interaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new interaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an interaction and returns it with ID and CreatedAt set.
func (r *Repo) Create(ctx context.Context, in domain.Interaction) (*domain.Interaction, error) {
	sql, args, err := postgres.Builder().Insert("interactions").
		Columns(insertColumns...).
		Values(in.ClientID, string(in.Type), string(in.Direction), in.Date, in.Subject, in.Notes, in.EmailID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	out := in
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "interaction", in.ClientID)
	}
	return &out, nil
}
