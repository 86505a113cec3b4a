package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

type rulesService interface {
	GetRules(ctx context.Context) ([]domain.ExtractionRule, error)
	SaveRules(ctx context.Context, rules []domain.ExtractionRule) ([]domain.ExtractionRule, error)
	SeedDefaultRule(ctx context.Context) ([]domain.ExtractionRule, bool, error)
}

// MagicExtractHandler serves the organization's extraction rules.
type MagicExtractHandler struct {
	svc rulesService
	log *slog.Logger
}

// NewMagicExtractHandler creates a MagicExtractHandler.
func NewMagicExtractHandler(svc rulesService, logger *slog.Logger) *MagicExtractHandler {
	return &MagicExtractHandler{svc: svc, log: logger.With("handler", "magic_extract")}
}

type rulesPayload struct {
	Rules []domain.ExtractionRule `json:"rules"`
}

type seedResponse struct {
	Rules  []domain.ExtractionRule `json:"rules"`
	Seeded bool                    `json:"seeded"`
}

// GetRules handles GET /api/magic-extract/rules.
func (h *MagicExtractHandler) GetRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.svc.GetRules(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rulesPayload{Rules: rules})
}

// SaveRules handles PUT /api/magic-extract/rules. The body replaces the
// whole rule set.
func (h *MagicExtractHandler) SaveRules(w http.ResponseWriter, r *http.Request) {
	var req rulesPayload
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Rules == nil {
		req.Rules = []domain.ExtractionRule{}
	}

	saved, err := h.svc.SaveRules(r.Context(), req.Rules)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rulesPayload{Rules: saved})
}

// SeedRules handles POST /api/magic-extract/rules/seed.
func (h *MagicExtractHandler) SeedRules(w http.ResponseWriter, r *http.Request) {
	rules, seeded, err := h.svc.SeedDefaultRule(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	status := http.StatusOK
	if seeded {
		status = http.StatusCreated
	}
	writeJSON(w, status, seedResponse{Rules: rules, Seeded: seeded})
}
