package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// ListAudit returns the most recent admin actions, newest first. limit is
// clamped to [1, 200]; zero selects the default of 50.
func (s *Service) ListAudit(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}
	if s.audit == nil {
		return []domain.AuditRecord{}, nil
	}

	switch {
	case limit <= 0:
		limit = defaultAuditLimit
	case limit > maxAuditLimit:
		limit = maxAuditLimit
	}

	records, err := s.audit.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("admin.ListAudit: %w", err)
	}
	return records, nil
}

// record appends to the audit trail. The action has already happened, so a
// failed write is logged and not returned.
func (s *Service) record(ctx context.Context, actor string, entity domain.EntityType, id *uuid.UUID, action domain.AuditAction, changes map[string]any) {
	if s.audit == nil {
		return
	}
	err := s.audit.Log(ctx, domain.AuditRecord{
		ID:         uuid.New(),
		Actor:      actor,
		EntityType: entity,
		EntityID:   id,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "write audit record",
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}

// recordUser audits an admin center action on a user.
func (s *Service) recordUser(ctx context.Context, userID uuid.UUID, action domain.AuditAction, changes map[string]any) {
	s.record(ctx, domain.AuditActorAdminCenter, domain.EntityTypeUser, &userID, action, changes)
}
