package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// GetOrCreateCode returns the stored access code, generating and storing one
// on first use. Only the configured admin email may call it.
func (s *Service) GetOrCreateCode(ctx context.Context) (domain.AccessCode, error) {
	if err := s.requireCodeOwner(ctx); err != nil {
		return domain.AccessCode{}, err
	}

	current, err := s.codes.GetLoginCode(ctx)
	switch {
	case err == nil && current.Code != "":
		return *current, nil
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return domain.AccessCode{}, fmt.Errorf("admin.GetOrCreateCode: %w", err)
	}

	code, err := s.storeNewCode(ctx)
	if err != nil {
		return domain.AccessCode{}, fmt.Errorf("admin.GetOrCreateCode: %w", err)
	}
	s.log.InfoContext(ctx, "admin access code created")
	return code, nil
}

// RegenerateCode replaces the access code unconditionally. Sessions issued
// with the old code stay valid until they expire.
func (s *Service) RegenerateCode(ctx context.Context) (domain.AccessCode, error) {
	if err := s.requireCodeOwner(ctx); err != nil {
		return domain.AccessCode{}, err
	}

	code, err := s.storeNewCode(ctx)
	if err != nil {
		return domain.AccessCode{}, fmt.Errorf("admin.RegenerateCode: %w", err)
	}
	s.log.InfoContext(ctx, "admin access code regenerated")
	s.record(ctx, ctxutil.UserEmailFromCtx(ctx), domain.EntityTypeAccessCode, nil, domain.AuditActionRegenerateCode, nil)
	return code, nil
}

func (s *Service) storeNewCode(ctx context.Context) (domain.AccessCode, error) {
	raw, err := auth.GenerateCode()
	if err != nil {
		return domain.AccessCode{}, err
	}
	code := domain.AccessCode{Code: raw, UpdatedAt: s.now().UTC()}
	if err := s.codes.SaveLoginCode(ctx, code); err != nil {
		return domain.AccessCode{}, fmt.Errorf("save code: %w", err)
	}
	return code, nil
}

// requireCodeOwner checks the caller's email against the configured admin
// email, case-insensitively.
func (s *Service) requireCodeOwner(ctx context.Context) error {
	email := ctxutil.UserEmailFromCtx(ctx)
	if email == "" || s.cfg.AdminEmail == "" || domain.NormalizeEmail(email) != s.cfg.AdminEmail {
		s.log.WarnContext(ctx, "access code requested by non-admin", slog.String("email", email))
		return domain.ErrUnauthorized
	}
	if s.codes == nil {
		return domain.ErrNotConfigured
	}
	return nil
}
