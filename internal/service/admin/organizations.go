package admin

import (
	"context"
	"fmt"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// ListOrganizations returns active organizations with their invitation code.
func (s *Service) ListOrganizations(ctx context.Context) ([]domain.AdminOrganization, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	orgs, err := s.orgs.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.ListOrganizations: %w", err)
	}

	out := make([]domain.AdminOrganization, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, domain.AdminOrganization{
			ID:                  o.ID.String(),
			Name:                o.Name,
			InviteCode:          o.SettingString(domain.SettingsKeyInvitationCode),
			InviteCodeExpiresAt: o.SettingString(domain.SettingsKeyInvitationCodeExpiresAt),
		})
	}
	return out, nil
}
