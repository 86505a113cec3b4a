package rest

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/transport/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type adminCenterService interface {
	Login(ctx context.Context, code string) (domain.AdminSession, error)
	VerifySession(value string) error
	ListOrganizations(ctx context.Context) ([]domain.AdminOrganization, error)
	ListUsers(ctx context.Context) ([]domain.UserWithMemberships, error)
	Impersonate(ctx context.Context, userID uuid.UUID) (domain.Impersonation, error)
	UpdateUserEmail(ctx context.Context, userID uuid.UUID, email string) error
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, password string) error
	BanUser(ctx context.Context, userID uuid.UUID, reason string) error
	UnbanUser(ctx context.Context, userID uuid.UUID) error
	UnassignFromOrg(ctx context.Context, userID, orgID uuid.UUID) error
	ListAudit(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

// CookieSettings controls the admin session cookie attributes.
type CookieSettings struct {
	Path   string
	Secure bool
	MaxAge time.Duration
}

// AdminCenterHandler serves the admin center pages and its JSON API.
type AdminCenterHandler struct {
	svc    adminCenterService
	cookie CookieSettings
	log    *slog.Logger
}

// NewAdminCenterHandler creates an AdminCenterHandler.
func NewAdminCenterHandler(svc adminCenterService, cookie CookieSettings, logger *slog.Logger) *AdminCenterHandler {
	return &AdminCenterHandler{svc: svc, cookie: cookie, log: logger.With("handler", "admin_center")}
}

func (h *AdminCenterHandler) dashboardPath() string { return h.cookie.Path + "/dashboard" }

// LoginPage handles GET /admincenter. A visitor with a valid session goes
// straight to the dashboard.
func (h *AdminCenterHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(middleware.AdminSessionCookie); err == nil && h.svc.VerifySession(c.Value) == nil {
		http.Redirect(w, r, h.dashboardPath(), http.StatusSeeOther)
		return
	}
	h.renderLogin(w, r, http.StatusOK, "")
}

type loginRequest struct {
	Code string `json:"code"`
}

// Login handles POST /admincenter/login. It accepts a form post from the
// login page or a JSON body.
func (h *AdminCenterHandler) Login(w http.ResponseWriter, r *http.Request) {
	asJSON := isJSON(r)

	var code string
	if asJSON {
		var req loginRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		code = req.Code
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			h.renderLogin(w, r, http.StatusBadRequest, "Invalid request")
			return
		}
		code = r.PostFormValue("code")
	}

	sess, err := h.svc.Login(r.Context(), code)
	if err != nil {
		if asJSON {
			handleError(h.log, w, r, err)
			return
		}
		h.renderLogin(w, r, loginFailureStatus(err), loginFailureMessage(err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminSessionCookie,
		Value:    sess.Value,
		Path:     h.cookie.Path,
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	if asJSON {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "expires_at": sess.ExpiresAt})
		return
	}
	http.Redirect(w, r, h.dashboardPath(), http.StatusSeeOther)
}

// Logout handles POST /admincenter/logout.
func (h *AdminCenterHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminSessionCookie,
		Value:    "",
		Path:     h.cookie.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.cookie.Path, http.StatusSeeOther)
}

type dashboardData struct {
	Organizations []domain.AdminOrganization
	Users         []domain.UserWithMemberships
	Audit         []domain.AuditRecord
	APIBase       string
}

// dashboardAuditLimit is how many recent admin actions the dashboard shows.
const dashboardAuditLimit = 20

// Dashboard handles GET /admincenter/dashboard (session required).
func (h *AdminCenterHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.svc.ListOrganizations(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	audit, err := h.svc.ListAudit(r.Context(), dashboardAuditLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "dashboard.html", dashboardData{
		Organizations: orgs,
		Users:         users,
		Audit:         audit,
		APIBase:       h.cookie.Path + "/api",
	})
}

// ListOrganizations handles GET /admincenter/api/organizations.
func (h *AdminCenterHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.svc.ListOrganizations(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orgs)
}

type adminMembershipResponse struct {
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	Role             string `json:"role"`
}

type adminUserResponse struct {
	ID           string                    `json:"id"`
	Email        string                    `json:"email"`
	Name         string                    `json:"name"`
	CreatedAt    time.Time                 `json:"created_at"`
	Banned       bool                      `json:"banned"`
	BannedReason *string                   `json:"banned_reason"`
	Orgs         []adminMembershipResponse `json:"orgs"`
}

// ListUsers handles GET /admincenter/api/users.
func (h *AdminCenterHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]adminUserResponse, 0, len(users))
	for _, u := range users {
		orgs := make([]adminMembershipResponse, 0, len(u.Memberships))
		for _, m := range u.Memberships {
			orgs = append(orgs, adminMembershipResponse{
				OrganizationID:   m.OrganizationID.String(),
				OrganizationName: m.OrganizationName,
				Role:             m.Role.String(),
			})
		}
		out = append(out, adminUserResponse{
			ID:           u.ID.String(),
			Email:        u.Email,
			Name:         u.Name,
			CreatedAt:    u.CreatedAt,
			Banned:       u.Banned,
			BannedReason: u.BannedReason,
			Orgs:         orgs,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Audit handles GET /admincenter/api/audit?limit=N.
func (h *AdminCenterHandler) Audit(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	records, err := h.svc.ListAudit(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

type impersonateResponse struct {
	AccessToken string    `json:"access_token"`
	URL         string    `json:"url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Impersonate handles POST /admincenter/api/users/{id}/impersonate.
func (h *AdminCenterHandler) Impersonate(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	imp, err := h.svc.Impersonate(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, impersonateResponse{
		AccessToken: imp.AccessToken,
		URL:         imp.RedirectURL,
		ExpiresAt:   imp.ExpiresAt,
	})
}

type updateEmailRequest struct {
	Email string `json:"email"`
}

// UpdateEmail handles POST /admincenter/api/users/{id}/email.
func (h *AdminCenterHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r, h.svc.UpdateUserEmail(r.Context(), userID, req.Email))
}

type updatePasswordRequest struct {
	Password string `json:"password"`
}

// UpdatePassword handles POST /admincenter/api/users/{id}/password.
func (h *AdminCenterHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updatePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r, h.svc.UpdateUserPassword(r.Context(), userID, req.Password))
}

type banRequest struct {
	Reason string `json:"reason"`
}

// Ban handles POST /admincenter/api/users/{id}/ban.
func (h *AdminCenterHandler) Ban(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req banRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r, h.svc.BanUser(r.Context(), userID, req.Reason))
}

// Unban handles POST /admincenter/api/users/{id}/unban.
func (h *AdminCenterHandler) Unban(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	h.respond(w, r, h.svc.UnbanUser(r.Context(), userID))
}

type unassignRequest struct {
	OrganizationID string `json:"organization_id"`
}

// Unassign handles POST /admincenter/api/users/{id}/unassign.
func (h *AdminCenterHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req unassignRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid organization_id")
		return
	}
	h.respond(w, r, h.svc.UnassignFromOrg(r.Context(), userID, orgID))
}

func (h *AdminCenterHandler) respond(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type loginData struct {
	Error  string
	Action string
}

func (h *AdminCenterHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.render(w, r, status, "login.html", loginData{Error: msg, Action: h.cookie.Path + "/login"})
}

func (h *AdminCenterHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page", slog.String("page", name), slog.String("error", err.Error()))
	}
}

func loginFailureStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCode):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func loginFailureMessage(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Summary()
	case errors.Is(err, domain.ErrInvalidCode):
		return "Invalid code"
	case errors.Is(err, domain.ErrNotConfigured):
		return "Admin login is not configured."
	default:
		return "Something went wrong. Try again."
	}
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
