package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/validator"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

type emailInput struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

type passwordInput struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func requireSession(ctx context.Context) error {
	if !ctxutil.IsAdminSession(ctx) {
		return domain.ErrUnauthorized
	}
	return nil
}

// ListUsers returns every user with their active organization memberships.
func (s *Service) ListUsers(ctx context.Context) ([]domain.UserWithMemberships, error) {
	if err := requireSession(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.ListUsers: %w", err)
	}

	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	memberships, err := s.members.ListActiveByUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("admin.ListUsers: %w", err)
	}

	byUser := make(map[uuid.UUID][]domain.Membership, len(users))
	for _, m := range memberships {
		byUser[m.UserID] = append(byUser[m.UserID], m)
	}

	out := make([]domain.UserWithMemberships, 0, len(users))
	for _, u := range users {
		ms := byUser[u.ID]
		if ms == nil {
			ms = []domain.Membership{}
		}
		out = append(out, domain.UserWithMemberships{User: u, Memberships: ms})
	}
	return out, nil
}

// UpdateUserEmail sets a user's email after normalizing it.
func (s *Service) UpdateUserEmail(ctx context.Context, userID uuid.UUID, email string) error {
	if err := requireSession(ctx); err != nil {
		return err
	}

	in := emailInput{Email: domain.NormalizeEmail(email)}
	if err := validator.Validate(in); err != nil {
		return err
	}

	if err := s.users.UpdateEmail(ctx, userID, in.Email); err != nil {
		return fmt.Errorf("admin.UpdateUserEmail: %w", err)
	}
	s.log.InfoContext(ctx, "user email updated", slog.String("user_id", userID.String()))
	s.recordUser(ctx, userID, domain.AuditActionUpdateEmail, map[string]any{"email": in.Email})
	return nil
}

// UpdateUserPassword replaces a user's password hash.
func (s *Service) UpdateUserPassword(ctx context.Context, userID uuid.UUID, password string) error {
	if err := requireSession(ctx); err != nil {
		return err
	}

	if err := validator.Validate(passwordInput{Password: password}); err != nil {
		return err
	}

	cost := s.cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return fmt.Errorf("admin.UpdateUserPassword: hash: %w", err)
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("admin.UpdateUserPassword: %w", err)
	}
	s.log.InfoContext(ctx, "user password reset", slog.String("user_id", userID.String()))
	s.recordUser(ctx, userID, domain.AuditActionResetPassword, nil)
	return nil
}

// BanUser marks a user banned. An empty reason is stored as NULL.
func (s *Service) BanUser(ctx context.Context, userID uuid.UUID, reason string) error {
	if err := requireSession(ctx); err != nil {
		return err
	}

	var r *string
	if trimmed := strings.TrimSpace(reason); trimmed != "" {
		r = &trimmed
	}
	if err := s.users.Ban(ctx, userID, r, s.now().UTC()); err != nil {
		return fmt.Errorf("admin.BanUser: %w", err)
	}
	s.log.InfoContext(ctx, "user banned", slog.String("user_id", userID.String()))
	var changes map[string]any
	if r != nil {
		changes = map[string]any{"reason": *r}
	}
	s.recordUser(ctx, userID, domain.AuditActionBan, changes)
	return nil
}

// UnbanUser clears a ban.
func (s *Service) UnbanUser(ctx context.Context, userID uuid.UUID) error {
	if err := requireSession(ctx); err != nil {
		return err
	}
	if err := s.users.Unban(ctx, userID); err != nil {
		return fmt.Errorf("admin.UnbanUser: %w", err)
	}
	s.log.InfoContext(ctx, "user unbanned", slog.String("user_id", userID.String()))
	s.recordUser(ctx, userID, domain.AuditActionUnban, nil)
	return nil
}

// UnassignFromOrg deactivates a user's membership in an organization.
func (s *Service) UnassignFromOrg(ctx context.Context, userID, orgID uuid.UUID) error {
	if err := requireSession(ctx); err != nil {
		return err
	}
	if err := s.members.Deactivate(ctx, orgID, userID); err != nil {
		return fmt.Errorf("admin.UnassignFromOrg: %w", err)
	}
	s.log.InfoContext(ctx, "user unassigned from organization",
		slog.String("user_id", userID.String()),
		slog.String("org_id", orgID.String()),
	)
	s.record(ctx, domain.AuditActorAdminCenter, domain.EntityTypeMembership, &userID, domain.AuditActionUnassign,
		map[string]any{"organization_id": orgID.String()})
	return nil
}
