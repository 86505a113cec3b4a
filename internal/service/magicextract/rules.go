package magicextract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/extract"
	"github.com/heartmarshall/crm-backend/internal/validator"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// GetRules returns the current organization's rules in stored order. Any
// active member may read them. Without an organization in context the result
// is empty.
func (s *Service) GetRules(ctx context.Context) ([]domain.ExtractionRule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	orgID, ok := ctxutil.OrgIDFromCtx(ctx)
	if !ok {
		return []domain.ExtractionRule{}, nil
	}

	if _, err := s.roleOf(ctx, orgID, userID); err != nil {
		return nil, err
	}

	rules, err := s.orgs.GetRules(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("get rules: %w", err)
	}
	return rules, nil
}

// SaveRules replaces the organization's rule set. Only the owner may save.
// Rules without an ID get a fresh one. The whole list is validated first and
// nothing is written if any rule is invalid.
func (s *Service) SaveRules(ctx context.Context, rules []domain.ExtractionRule) ([]domain.ExtractionRule, error) {
	orgID, userID, err := s.requireOwner(ctx)
	if err != nil {
		return nil, err
	}

	rules = normalizeRules(rules)
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	for i := range rules {
		if rules[i].ID == "" {
			rules[i].ID = uuid.NewString()
		}
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		settings, err := s.orgs.LockSettings(ctx, orgID)
		if err != nil {
			return fmt.Errorf("lock settings: %w", err)
		}
		settings[domain.SettingsKeyMagicExtractRules] = rules
		if err := s.orgs.UpdateSettings(ctx, orgID, settings); err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "magic extract rules saved",
		slog.String("org_id", orgID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("count", len(rules)),
	)
	return rules, nil
}

// SeedDefaultRule prepends the built-in contact-form rule unless a rule for
// that subject already exists. It reports whether the rule was added.
func (s *Service) SeedDefaultRule(ctx context.Context) ([]domain.ExtractionRule, bool, error) {
	orgID, _, err := s.requireOwner(ctx)
	if err != nil {
		return nil, false, err
	}

	var (
		rules  []domain.ExtractionRule
		seeded bool
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		settings, err := s.orgs.LockSettings(ctx, orgID)
		if err != nil {
			return fmt.Errorf("lock settings: %w", err)
		}
		current, err := s.orgs.GetRules(ctx, orgID)
		if err != nil {
			return fmt.Errorf("get rules: %w", err)
		}
		if hasDefaultInquiryRule(current) {
			rules = current
			return nil
		}

		rules = append([]domain.ExtractionRule{DefaultInquiryRule(orgID)}, current...)
		settings[domain.SettingsKeyMagicExtractRules] = rules
		if err := s.orgs.UpdateSettings(ctx, orgID, settings); err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		seeded = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if seeded {
		s.log.InfoContext(ctx, "default inquiry rule seeded", slog.String("org_id", orgID.String()))
	}
	return rules, seeded, nil
}

// ValidateRules checks a rule set before it is stored and reports every
// offending field. Each rule needs a non-empty email mapping, subject regexes
// must compile and mapping regexes must compile with a capture group.
func ValidateRules(rules []domain.ExtractionRule) error {
	var errs []domain.FieldError
	seen := make(map[string]int, len(rules))

	for i, rule := range rules {
		prefix := fmt.Sprintf("rules[%d]", i)
		errs = append(errs, validator.Fields(rule, prefix)...)

		if rule.ID != "" {
			if j, dup := seen[rule.ID]; dup {
				errs = append(errs, domain.FieldError{
					Field:   prefix + ".id",
					Message: fmt.Sprintf("duplicates rules[%d].id", j),
				})
			}
			seen[rule.ID] = i
		}

		if !rule.TargetsEmail() {
			errs = append(errs, domain.FieldError{
				Field:   prefix + ".variable_mapping",
				Message: "at least one mapping must target email",
			})
		}

		if rule.SubjectMatchType == domain.SubjectMatchRegex && strings.TrimSpace(rule.SubjectMatch) != "" {
			if _, err := extract.Matches(domain.SubjectMatchRegex, rule.SubjectMatch, ""); err != nil {
				errs = append(errs, domain.FieldError{Field: prefix + ".subject_match", Message: err.Error()})
			}
		}

		for j, m := range rule.VariableMapping {
			if m.ExtractionType != domain.ExtractionRegex || strings.TrimSpace(m.Pattern) == "" {
				continue
			}
			if _, err := extract.CompileMappingPattern(m.Pattern); err != nil {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s.variable_mapping[%d].pattern", prefix, j),
					Message: err.Error(),
				})
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func normalizeRules(rules []domain.ExtractionRule) []domain.ExtractionRule {
	out := make([]domain.ExtractionRule, len(rules))
	for i, r := range rules {
		r.ID = strings.TrimSpace(r.ID)
		r.Name = strings.TrimSpace(r.Name)
		if !r.SubjectMatchType.IsValid() {
			r.SubjectMatchType = domain.SubjectMatchContains
		}
		mappings := make([]domain.VariableMapping, len(r.VariableMapping))
		for j, m := range r.VariableMapping {
			if m.Key == "" {
				m.Key = m.TargetField.String()
			}
			mappings[j] = m
		}
		r.VariableMapping = mappings
		out[i] = r
	}
	return out
}

func (s *Service) roleOf(ctx context.Context, orgID, userID uuid.UUID) (domain.OrgRole, error) {
	role, err := s.members.GetRole(ctx, orgID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrForbidden
	}
	if err != nil {
		return "", fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func (s *Service) requireOwner(ctx context.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, domain.ErrUnauthorized
	}
	orgID, ok := ctxutil.OrgIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, domain.ErrForbidden
	}
	role, err := s.roleOf(ctx, orgID, userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if role != domain.OrgRoleOwner {
		return uuid.Nil, uuid.Nil, domain.ErrForbidden
	}
	return orgID, userID, nil
}
