// Package notification implements the Notification repository using PostgreSQL.
package notification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an unread notification and returns it with ID and CreatedAt set.
func (r *Repo) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	metadata := n.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	sql, args, err := postgres.Builder().Insert("notifications").
		Columns("owner_id", "type", "title", "message", "is_read", "related_id", "related_type", "metadata").
		Values(n.OwnerID, string(n.Type), n.Title, n.Message, false, n.RelatedID, n.RelatedType, metadata).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql: %w", err)
	}

	out := n
	out.IsRead = false
	out.Metadata = metadata
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "notification", n.OwnerID)
	}
	return &out, nil
}
