package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedOrganization creates an active organization owned by owner, with an
// active owner membership. settings may be nil.
func SeedOrganization(t *testing.T, pool *pgxpool.Pool, owner domain.User, settings map[string]any) domain.Organization {
	t.Helper()
	ctx := context.Background()

	if settings == nil {
		settings = map[string]any{}
	}

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	org := domain.Organization{
		ID:        uuid.New(),
		Name:      "Org " + suffix,
		Slug:      "org-" + suffix,
		OwnerID:   owner.ID,
		Settings:  settings,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO organizations (id, name, slug, owner_id, settings, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		org.ID, org.Name, org.Slug, org.OwnerID, org.Settings, org.IsActive, org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOrganization: %v", err)
	}

	SeedMember(t, pool, org.ID, owner.ID, domain.OrgRoleOwner)
	return org
}

// SeedMember adds an active membership.
func SeedMember(t *testing.T, pool *pgxpool.Pool, orgID, userID uuid.UUID, role domain.OrgRole) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO organization_members (organization_id, user_id, role, joined_at, is_active)
		 VALUES ($1, $2, $3, now(), true)`,
		orgID, userID, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}
}
