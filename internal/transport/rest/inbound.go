package rest

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/magicextract"
)

// InboundSecretHeader authenticates the mail relay calling the webhook.
const InboundSecretHeader = "X-Inbound-Secret"

type inboundService interface {
	ProcessInbound(ctx context.Context, slug string, email domain.InboundEmail) (*magicextract.ProcessResult, error)
}

// InboundHandler receives parsed emails from the mail relay.
type InboundHandler struct {
	svc    inboundService
	secret string
	log    *slog.Logger
}

// NewInboundHandler creates an InboundHandler. An empty secret disables the
// webhook.
func NewInboundHandler(svc inboundService, secret string, logger *slog.Logger) *InboundHandler {
	return &InboundHandler{svc: svc, secret: secret, log: logger.With("handler", "inbound")}
}

type inboundRequest struct {
	MessageID string `json:"message_id"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
	Subject   string `json:"subject"`
	BodyHTML  string `json:"body_html"`
	BodyText  string `json:"body_text"`
}

type diagnosticResponse struct {
	Kind    string `json:"kind"`
	RuleID  string `json:"rule_id,omitempty"`
	Message string `json:"message"`
}

type inboundResponse struct {
	Duplicate      bool                 `json:"duplicate"`
	Matched        bool                 `json:"matched"`
	RuleID         string               `json:"rule_id,omitempty"`
	RuleName       string               `json:"rule_name,omitempty"`
	ClientID       *string              `json:"client_id,omitempty"`
	ClientCreated  bool                 `json:"client_created"`
	InteractionID  *string              `json:"interaction_id,omitempty"`
	NotificationID *string              `json:"notification_id,omitempty"`
	Diagnostics    []diagnosticResponse `json:"diagnostics"`
}

// Receive handles POST /api/inbound/{slug}.
func (h *InboundHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if h.secret == "" {
		writeError(w, http.StatusServiceUnavailable, "inbound webhook not configured")
		return
	}
	got := r.Header.Get(InboundSecretHeader)
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req inboundRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	body := req.BodyHTML
	if body == "" {
		body = req.BodyText
	}

	result, err := h.svc.ProcessInbound(r.Context(), r.PathValue("slug"), domain.InboundEmail{
		MessageID: req.MessageID,
		From:      req.FromEmail,
		Subject:   req.Subject,
		Body:      body,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toInboundResponse(result))
}

func toInboundResponse(res *magicextract.ProcessResult) inboundResponse {
	out := inboundResponse{
		Duplicate:     res.Duplicate,
		Matched:       res.Matched,
		RuleID:        res.RuleID,
		RuleName:      res.RuleName,
		ClientCreated: res.ClientCreated,
		Diagnostics:   make([]diagnosticResponse, 0, len(res.Diagnostics)),
	}
	if res.ClientID != uuid.Nil {
		id := res.ClientID.String()
		out.ClientID = &id
	}
	if res.InteractionID != nil {
		id := res.InteractionID.String()
		out.InteractionID = &id
	}
	if res.NotificationID != nil {
		id := res.NotificationID.String()
		out.NotificationID = &id
	}
	for _, d := range res.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, diagnosticResponse{
			Kind:    string(d.Kind),
			RuleID:  d.RuleID,
			Message: d.Message,
		})
	}
	return out
}
