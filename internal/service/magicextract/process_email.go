package magicextract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/extract"
	"github.com/heartmarshall/crm-backend/internal/observer"
)

const (
	// ClientSource marks clients created from inbound email.
	ClientSource = "magic_extract"

	// NoMessagePlaceholder is the interaction note when no message was extracted.
	NoMessagePlaceholder = "Inquiry received via email (no message extracted)"

	relatedTypeClient = "client"
)

// ProcessResult describes what ProcessEmail did with one message.
type ProcessResult struct {
	Duplicate      bool
	Matched        bool
	RuleID         string
	RuleName       string
	ClientID       uuid.UUID
	ClientCreated  bool
	InteractionID  *uuid.UUID
	NotificationID *uuid.UUID
	Diagnostics    []extract.Diagnostic
}

// ProcessInbound resolves the organization by slug and dispatches the email.
func (s *Service) ProcessInbound(ctx context.Context, slug string, email domain.InboundEmail) (*ProcessResult, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}
	org, err := s.orgs.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get organization %q: %w", slug, err)
	}
	return s.dispatch(ctx, org, email)
}

// ProcessEmail applies the organization's rules to one inbound email. When a
// rule matches and yields an email address it upserts the client, then
// optionally logs an interaction and notifies the organization owner. The
// steps are not transactional: a failing step returns an error and leaves
// earlier writes in place.
func (s *Service) ProcessEmail(ctx context.Context, orgID uuid.UUID, email domain.InboundEmail) (*ProcessResult, error) {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}
	if !org.IsActive {
		return nil, fmt.Errorf("organization %s: %w", orgID, domain.ErrNotFound)
	}
	return s.dispatch(ctx, org, email)
}

func (s *Service) dispatch(ctx context.Context, org *domain.Organization, email domain.InboundEmail) (*ProcessResult, error) {
	started := s.now()
	log := s.log.With(
		slog.String("org_id", org.ID.String()),
		slog.String("message_id", email.MessageID),
	)

	claimed, state := s.claim(ctx, log, org.ID, email.MessageID)
	switch state {
	case domain.DeliveryDone:
		log.InfoContext(ctx, "duplicate inbound email skipped")
		observer.ObserveEmail(observer.OutcomeDuplicate, started)
		return &ProcessResult{Duplicate: true}, nil
	case domain.DeliveryInFlight:
		// The other attempt may still fail; make the sender deliver again later.
		log.InfoContext(ctx, "inbound email already in flight")
		observer.ObserveEmail(observer.OutcomeFailed, started)
		return nil, fmt.Errorf("message %s is being processed: %w", email.MessageID, domain.ErrConflict)
	}

	result, err := s.apply(ctx, log, org, email)
	if err != nil {
		if claimed {
			s.forget(ctx, log, org.ID, email.MessageID)
		}
		observer.ObserveEmail(observer.OutcomeFailed, started)
		return nil, err
	}
	if claimed {
		s.complete(ctx, log, org.ID, email.MessageID)
	}

	switch {
	case !result.Matched:
		observer.ObserveEmail(observer.OutcomeNoMatch, started)
	case result.ClientID == uuid.Nil:
		observer.ObserveEmail(observer.OutcomeMissingEmail, started)
	default:
		observer.ObserveEmail(observer.OutcomeProcessed, started)
	}
	return result, nil
}

func (s *Service) apply(ctx context.Context, log *slog.Logger, org *domain.Organization, email domain.InboundEmail) (*ProcessResult, error) {
	rules, err := s.orgs.GetRules(ctx, org.ID)
	if err != nil {
		return nil, fmt.Errorf("get rules: %w", err)
	}

	outcome := extract.Evaluate(rules, email)
	result := &ProcessResult{Matched: outcome.Matched(), Diagnostics: outcome.Diagnostics}
	for _, d := range outcome.Diagnostics {
		observer.DiagnosticsTotal.WithLabelValues(string(d.Kind)).Inc()
		log.WarnContext(ctx, "magic extract diagnostic",
			slog.String("kind", string(d.Kind)),
			slog.String("rule_id", d.RuleID),
			slog.String("detail", d.Message),
		)
	}

	if !outcome.Matched() {
		log.InfoContext(ctx, "no rule matched inbound email", slog.String("subject", email.Subject))
		return result, nil
	}

	rule := outcome.Rule
	result.RuleID = rule.ID
	result.RuleName = rule.Name
	if !outcome.HasEmail() {
		return result, nil
	}

	contact := outcome.Fields.ToContact()
	source := ClientSource
	client, created, err := s.clients.Upsert(ctx, domain.Client{
		OrganizationID: org.ID,
		OwnerID:        org.OwnerID,
		Name:           contact.Name,
		Email:          contact.Email,
		Phone:          contact.Phone,
		Company:        contact.Company,
		NotesSummary:   contact.NotesSummary,
		Status:         domain.ClientStatusContacted,
		ClientType:     domain.ClientTypePresales,
		Source:         &source,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert client: %w", err)
	}
	result.ClientID = client.ID
	result.ClientCreated = created
	observer.ClientsUpsertedTotal.WithLabelValues(upsertLabel(created)).Inc()

	if rule.CreateInteraction {
		in, err := s.interactions.Create(ctx, domain.Interaction{
			ClientID:  client.ID,
			Type:      domain.InteractionEmail,
			Direction: domain.DirectionInbound,
			Date:      s.now().UTC(),
			Subject:   email.Subject,
			Notes:     interactionNotes(rule.Name, contact.Message),
			EmailID:   nonEmpty(email.MessageID),
		})
		if err != nil {
			return result, fmt.Errorf("create interaction: %w", err)
		}
		result.InteractionID = &in.ID
	}

	if rule.CreateNotification {
		related := client.ID
		relatedType := relatedTypeClient
		message := notificationMessage(contact, email.Subject)
		n, err := s.notifications.Create(ctx, domain.Notification{
			OwnerID:     org.OwnerID,
			Type:        domain.NotificationEmail,
			Title:       "New inquiry: " + client.Name,
			Message:     &message,
			RelatedID:   &related,
			RelatedType: &relatedType,
			Metadata: map[string]any{
				"rule_id":   rule.ID,
				"rule_name": rule.Name,
				"client_id": client.ID.String(),
				"source":    ClientSource,
			},
		})
		if err != nil {
			return result, fmt.Errorf("create notification: %w", err)
		}
		result.NotificationID = &n.ID
	}

	log.InfoContext(ctx, "inbound email processed",
		slog.String("rule_id", rule.ID),
		slog.String("client_id", client.ID.String()),
		slog.Bool("client_created", created),
	)
	return result, nil
}

// claim reserves the message id. Without a filter, without an id or when Redis
// fails, the message is processed unclaimed and the upsert key guards it.
func (s *Service) claim(ctx context.Context, log *slog.Logger, orgID uuid.UUID, messageID string) (claimed bool, state domain.DeliveryState) {
	if s.dedup == nil || strings.TrimSpace(messageID) == "" {
		return false, domain.DeliveryNew
	}
	state, err := s.dedup.Claim(ctx, orgID, messageID)
	if err != nil {
		log.WarnContext(ctx, "dedup unavailable", slog.String("error", err.Error()))
		return false, domain.DeliveryNew
	}
	return state == domain.DeliveryNew, state
}

func (s *Service) complete(ctx context.Context, log *slog.Logger, orgID uuid.UUID, messageID string) {
	if err := s.dedup.Complete(context.WithoutCancel(ctx), orgID, messageID); err != nil {
		log.WarnContext(ctx, "dedup complete failed", slog.String("error", err.Error()))
	}
}

func (s *Service) forget(ctx context.Context, log *slog.Logger, orgID uuid.UUID, messageID string) {
	if err := s.dedup.Forget(context.WithoutCancel(ctx), orgID, messageID); err != nil {
		log.WarnContext(ctx, "dedup forget failed", slog.String("error", err.Error()))
	}
}

func interactionNotes(ruleName, message string) string {
	if strings.TrimSpace(message) == "" {
		return NoMessagePlaceholder
	}
	return fmt.Sprintf("Magic extract (%s): %s", ruleName, message)
}

func notificationMessage(c extract.ContactData, subject string) string {
	var b strings.Builder
	b.WriteString(c.Email)
	if c.Phone != nil {
		b.WriteString(", ")
		b.WriteString(*c.Phone)
	}
	if subject != "" {
		b.WriteString(" | ")
		b.WriteString(subject)
	}
	return b.String()
}

func upsertLabel(created bool) string {
	if created {
		return "created"
	}
	return "merged"
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
