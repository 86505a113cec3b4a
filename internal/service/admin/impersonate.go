package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Impersonate mints a short-lived access token for userID and returns the
// application URL to open with it.
func (s *Service) Impersonate(ctx context.Context, userID uuid.UUID) (domain.Impersonation, error) {
	if err := requireSession(ctx); err != nil {
		return domain.Impersonation{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.Impersonation{}, fmt.Errorf("admin.Impersonate: %w", err)
	}
	if user.Email == "" {
		return domain.Impersonation{}, domain.NewValidationError("user_id", "user has no email")
	}
	if user.IsBanned() {
		return domain.Impersonation{}, domain.NewValidationError("user_id", "user is banned")
	}

	token, exp, err := s.tokens.GenerateImpersonationToken(auth.Identity{
		UserID:         user.ID,
		Email:          user.Email,
		ImpersonatedBy: auth.DefaultImpersonator,
	}, s.cfg.ImpersonationTTL)
	if err != nil {
		return domain.Impersonation{}, fmt.Errorf("admin.Impersonate: %w", err)
	}

	s.log.InfoContext(ctx, "impersonation token issued", slog.String("user_id", userID.String()))
	s.recordUser(ctx, userID, domain.AuditActionImpersonate, map[string]any{"expires_at": exp.UTC().Format(time.RFC3339)})
	return domain.Impersonation{
		AccessToken: token,
		RedirectURL: s.cfg.AppURL + "/dashboard",
		ExpiresAt:   exp,
	}, nil
}
