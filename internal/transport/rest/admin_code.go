package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

type accessCodeService interface {
	GetOrCreateCode(ctx context.Context) (domain.AccessCode, error)
	RegenerateCode(ctx context.Context) (domain.AccessCode, error)
}

// AdminCodeHandler lets the configured admin user read and rotate the admin
// center access code.
type AdminCodeHandler struct {
	svc accessCodeService
	log *slog.Logger
}

// NewAdminCodeHandler creates an AdminCodeHandler.
func NewAdminCodeHandler(svc accessCodeService, logger *slog.Logger) *AdminCodeHandler {
	return &AdminCodeHandler{svc: svc, log: logger.With("handler", "admin_code")}
}

type accessCodeResponse struct {
	Code      string    `json:"code"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Get handles GET /api/admin/code.
func (h *AdminCodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	code, err := h.svc.GetOrCreateCode(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, accessCodeResponse(code))
}

// Regenerate handles POST /api/admin/code/regenerate.
func (h *AdminCodeHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	code, err := h.svc.RegenerateCode(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, accessCodeResponse(code))
}
