// Package magicextract stores per-organization extraction rules and turns
// inbound emails into client upserts, interactions and notifications.
package magicextract

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

type orgRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Organization, error)
	GetRules(ctx context.Context, orgID uuid.UUID) ([]domain.ExtractionRule, error)
	LockSettings(ctx context.Context, orgID uuid.UUID) (map[string]any, error)
	UpdateSettings(ctx context.Context, orgID uuid.UUID, settings map[string]any) error
}

type membershipRepo interface {
	GetRole(ctx context.Context, orgID, userID uuid.UUID) (domain.OrgRole, error)
}

type clientRepo interface {
	Upsert(ctx context.Context, c domain.Client) (*domain.Client, bool, error)
}

type interactionRepo interface {
	Create(ctx context.Context, in domain.Interaction) (*domain.Interaction, error)
}

type notificationRepo interface {
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
}

type dedupFilter interface {
	Claim(ctx context.Context, orgID uuid.UUID, messageID string) (domain.DeliveryState, error)
	Complete(ctx context.Context, orgID uuid.UUID, messageID string) error
	Forget(ctx context.Context, orgID uuid.UUID, messageID string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides Magic Extract rule management and email dispatch.
type Service struct {
	log           *slog.Logger
	orgs          orgRepo
	members       membershipRepo
	clients       clientRepo
	interactions  interactionRepo
	notifications notificationRepo
	dedup         dedupFilter
	tx            txManager
	now           func() time.Time
}

// NewService creates a new Magic Extract service. dedup may be nil, in which
// case re-delivered messages are merged by the client upsert alone.
func NewService(
	log *slog.Logger,
	orgs orgRepo,
	members membershipRepo,
	clients clientRepo,
	interactions interactionRepo,
	notifications notificationRepo,
	dedup dedupFilter,
	tx txManager,
) *Service {
	return &Service{
		log:           log.With("service", "magicextract"),
		orgs:          orgs,
		members:       members,
		clients:       clients,
		interactions:  interactions,
		notifications: notifications,
		dedup:         dedup,
		tx:            tx,
		now:           time.Now,
	}
}
