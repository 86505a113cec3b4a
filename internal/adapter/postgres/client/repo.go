// Package client implements the Client repository using PostgreSQL.
package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// upsertSQL inserts a client or merges into the existing one with the same
// (organization_id, lower(email)). Existing non-empty values are kept; empty
// ones are filled from the incoming row. A placeholder name is replaced.
const upsertSQL = `
INSERT INTO clients (organization_id, owner_id, name, email, phone, company, notes_summary, status, client_type, source)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (organization_id, (lower(email))) DO UPDATE SET
    name          = CASE WHEN btrim(clients.name) IN ('', 'Unknown') THEN EXCLUDED.name ELSE clients.name END,
    phone         = COALESCE(NULLIF(clients.phone, ''), EXCLUDED.phone),
    company       = COALESCE(NULLIF(clients.company, ''), EXCLUDED.company),
    notes_summary = COALESCE(NULLIF(clients.notes_summary, ''), EXCLUDED.notes_summary),
    is_deleted    = false,
    updated_at    = now()
RETURNING id, organization_id, owner_id, name, email, phone, company, notes_summary,
          status, COALESCE(client_type, ''), source, created_at, (xmax = 0) AS inserted`

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new client repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert creates the client or merges c into the existing client of the same
// organization and email (case-insensitive). The boolean reports whether a
// new row was inserted. The unique index is the only concurrency guard, so two
// concurrent calls for the same address converge on one row.
func (r *Repo) Upsert(ctx context.Context, c domain.Client) (*domain.Client, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		out        domain.Client
		status     string
		clientType string
		inserted   bool
	)
	err := q.QueryRow(ctx, upsertSQL,
		c.OrganizationID, c.OwnerID, c.Name, c.Email,
		c.Phone, c.Company, c.NotesSummary,
		string(c.Status), nullIfEmpty(string(c.ClientType)), c.Source,
	).Scan(
		&out.ID, &out.OrganizationID, &out.OwnerID, &out.Name, &out.Email,
		&out.Phone, &out.Company, &out.NotesSummary,
		&status, &clientType, &out.Source, &out.CreatedAt, &inserted,
	)
	if err != nil {
		return nil, false, postgres.MapError(err, "client", uuid.Nil)
	}

	out.Status = domain.ClientStatus(status)
	out.ClientType = domain.ClientType(clientType)
	return &out, inserted, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
