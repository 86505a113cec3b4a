// Package admin implements the admin center: the shared access code, the
// signed session cookie and the operator actions behind it.
package admin

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

type codeStore interface {
	GetLoginCode(ctx context.Context) (*domain.AccessCode, error)
	SaveLoginCode(ctx context.Context, code domain.AccessCode) error
}

type sessionSigner interface {
	Issue() (string, time.Time, error)
	Verify(value string) error
}

type tokenIssuer interface {
	GenerateImpersonationToken(id auth.Identity, ttl time.Duration) (string, time.Time, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	Ban(ctx context.Context, id uuid.UUID, reason *string, at time.Time) error
	Unban(ctx context.Context, id uuid.UUID) error
}

type orgRepo interface {
	ListActive(ctx context.Context) ([]domain.Organization, error)
}

type membershipRepo interface {
	ListActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]domain.Membership, error)
	Deactivate(ctx context.Context, orgID, userID uuid.UUID) error
}

type auditLog interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

// Config holds admin center settings resolved at startup.
type Config struct {
	// AdminEmail is the only user allowed to read or rotate the access code.
	AdminEmail       string
	AppURL           string
	ImpersonationTTL time.Duration
	PasswordHashCost int
}

// Service implements the admin center.
type Service struct {
	log      *slog.Logger
	cfg      Config
	codes    codeStore
	sessions sessionSigner
	tokens   tokenIssuer
	users    userRepo
	orgs     orgRepo
	members  membershipRepo
	audit    auditLog
	now      func() time.Time
}

// NewService creates the admin service. codes may be nil, in which case code
// operations return domain.ErrNotConfigured. audit may be nil to skip the
// audit trail.
func NewService(
	logger *slog.Logger,
	cfg Config,
	codes codeStore,
	sessions sessionSigner,
	tokens tokenIssuer,
	users userRepo,
	orgs orgRepo,
	members membershipRepo,
	audit auditLog,
) *Service {
	cfg.AdminEmail = domain.NormalizeEmail(cfg.AdminEmail)
	cfg.AppURL = strings.TrimRight(cfg.AppURL, "/")
	return &Service{
		log:      logger.With("service", "admin"),
		cfg:      cfg,
		codes:    codes,
		sessions: sessions,
		tokens:   tokens,
		users:    users,
		orgs:     orgs,
		members:  members,
		audit:    audit,
		now:      time.Now,
	}
}
