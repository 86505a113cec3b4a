// Package extract implements the Magic Extract engine: subject matching,
// per-mapping field extraction and first-match rule evaluation. It performs
// no I/O; dispatching the outcome is the caller's job.
package extract

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// DiagnosticKind classifies a non-fatal evaluation event.
type DiagnosticKind string

const (
	// DiagInvalidSubjectPattern: a rule's subject regex failed to compile; the rule was skipped.
	DiagInvalidSubjectPattern DiagnosticKind = "invalid_subject_pattern"
	// DiagInvalidMappingPattern: a mapping regex failed to compile or has no capture group.
	DiagInvalidMappingPattern DiagnosticKind = "invalid_mapping_pattern"
	// DiagMissingEmail: the selected rule produced no usable email.
	DiagMissingEmail DiagnosticKind = "missing_email"
)

// Diagnostic records something an operator may want to see in logs.
type Diagnostic struct {
	Kind    DiagnosticKind
	RuleID  string
	Message string
}

// Fields holds extracted values by target.
type Fields map[domain.TargetField]string

// Get returns the value for a target, or "" when absent.
func (f Fields) Get(target domain.TargetField) string {
	return f[target]
}

// Outcome is the result of evaluating a rule set against one email.
// Rule is nil when no active rule matched the subject.
type Outcome struct {
	Rule        *domain.ExtractionRule
	Fields      Fields
	Diagnostics []Diagnostic
}

// Matched reports whether a rule was selected.
func (o Outcome) Matched() bool { return o.Rule != nil }

// emailShape is the loose address check applied before a client is touched.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// HasEmail reports whether the selected rule yielded a usable email address.
func (o Outcome) HasEmail() bool {
	return o.Rule != nil && emailShape.MatchString(o.Fields.Get(domain.TargetEmail))
}

// Evaluate selects the first active rule (ascending SortOrder) whose subject
// predicate matches and runs all of its mappings against the normalized body.
// Later rules are never tried, even when the selected rule yields no email.
func Evaluate(rules []domain.ExtractionRule, email domain.InboundEmail) Outcome {
	var out Outcome

	active := make([]domain.ExtractionRule, 0, len(rules))
	for _, r := range rules {
		if r.IsActive {
			active = append(active, r)
		}
	}
	slices.SortStableFunc(active, func(a, b domain.ExtractionRule) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})

	for i := range active {
		rule := active[i]
		ok, err := Matches(rule.SubjectMatchType, rule.SubjectMatch, email.Subject)
		if err != nil {
			out.Diagnostics = append(out.Diagnostics, Diagnostic{
				Kind:    DiagInvalidSubjectPattern,
				RuleID:  rule.ID,
				Message: err.Error(),
			})
			continue
		}
		if !ok {
			continue
		}

		out.Rule = &rule
		out.Fields = extractAll(NormalizeBody(email.Body), rule, &out.Diagnostics)
		if !out.HasEmail() {
			out.Diagnostics = append(out.Diagnostics, Diagnostic{
				Kind:    DiagMissingEmail,
				RuleID:  rule.ID,
				Message: "rule matched subject but extracted no valid email",
			})
		}
		return out
	}

	return out
}

func extractAll(body string, rule domain.ExtractionRule, diags *[]Diagnostic) Fields {
	fields := make(Fields, len(rule.VariableMapping))
	for _, m := range rule.VariableMapping {
		if !m.TargetField.IsValid() || strings.TrimSpace(m.Pattern) == "" {
			continue
		}
		var (
			value string
			ok    bool
		)
		if m.ExtractionType == domain.ExtractionLabel {
			value, ok = extractLabel(body, m.Pattern)
		} else {
			var err error
			value, ok, err = extractRegex(body, m.Pattern)
			if err != nil {
				*diags = append(*diags, Diagnostic{
					Kind:    DiagInvalidMappingPattern,
					RuleID:  rule.ID,
					Message: err.Error(),
				})
			}
		}
		if ok {
			fields[m.TargetField] = value
		}
	}
	return fields
}

// ContactData is the client-shaped view of extracted fields.
type ContactData struct {
	Name         string
	Email        string
	Phone        *string
	Message      string
	Company      *string
	NotesSummary *string
}

// ToContact maps extracted fields onto contact data. Name falls back to the
// email local part, then to "Unknown".
func (f Fields) ToContact() ContactData {
	email := domain.NormalizeEmail(f.Get(domain.TargetEmail))
	name := f.Get(domain.TargetName)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	if name == "" {
		name = "Unknown"
	}
	return ContactData{
		Name:         name,
		Email:        email,
		Phone:        nonEmpty(f.Get(domain.TargetPhone)),
		Message:      f.Get(domain.TargetMessage),
		Company:      nonEmpty(f.Get(domain.TargetCompany)),
		NotesSummary: nonEmpty(f.Get(domain.TargetNotesSummary)),
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
