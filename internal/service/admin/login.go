package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/observer"
)

// Login exchanges the access code for a signed session. Codes are compared
// after trimming and uppercasing.
func (s *Service) Login(ctx context.Context, code string) (domain.AdminSession, error) {
	submitted := domain.NormalizeAccessCode(code)
	if submitted == "" {
		return domain.AdminSession{}, domain.NewValidationError("code", "Enter the access code")
	}
	if s.codes == nil {
		return domain.AdminSession{}, domain.ErrNotConfigured
	}

	stored, err := s.codes.GetLoginCode(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.AdminSession{}, fmt.Errorf("admin.Login: %w", err)
	}
	if stored == nil || !codesEqual(domain.NormalizeAccessCode(stored.Code), submitted) {
		observer.AdminLoginsTotal.WithLabelValues("invalid_code").Inc()
		s.log.WarnContext(ctx, "admin login rejected")
		return domain.AdminSession{}, domain.ErrInvalidCode
	}

	value, exp, err := s.sessions.Issue()
	if err != nil {
		return domain.AdminSession{}, fmt.Errorf("admin.Login: %w", err)
	}

	observer.AdminLoginsTotal.WithLabelValues("success").Inc()
	s.log.InfoContext(ctx, "admin session issued")
	return domain.AdminSession{Value: value, ExpiresAt: exp}, nil
}

// VerifySession reports whether a cookie value is a valid, unexpired session.
func (s *Service) VerifySession(value string) error {
	if value == "" {
		return domain.ErrUnauthorized
	}
	if err := s.sessions.Verify(value); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return nil
}

func codesEqual(stored, submitted string) bool {
	return stored != "" && subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
