package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/crm-backend/internal/transport/middleware"
	"github.com/heartmarshall/crm-backend/internal/transport/rest"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health       *rest.HealthHandler
	MagicExtract *rest.MagicExtractHandler
	Inbound      *rest.InboundHandler
	AdminCode    *rest.AdminCodeHandler
	AdminCenter  *rest.AdminCenterHandler
}

// RouterDeps holds the middleware the router applies to route groups.
type RouterDeps struct {
	// Auth resolves the bearer token on tenant routes.
	Auth middleware.Middleware
	// AdminGuard rejects admin center requests without a valid session.
	AdminGuard middleware.Middleware
	// LoginLimit throttles admin center login attempts.
	LoginLimit middleware.Middleware
	// AdminPath is the admin center mount point, e.g. /admincenter.
	AdminPath string
}

// NewRouter builds the route table. Global middleware is applied by the caller.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	tenant := func(fn http.HandlerFunc) http.Handler { return deps.Auth(fn) }
	mux.Handle("GET /api/magic-extract/rules", tenant(h.MagicExtract.GetRules))
	mux.Handle("PUT /api/magic-extract/rules", tenant(h.MagicExtract.SaveRules))
	mux.Handle("POST /api/magic-extract/rules/seed", tenant(h.MagicExtract.SeedRules))
	mux.Handle("GET /api/admin/code", tenant(h.AdminCode.Get))
	mux.Handle("POST /api/admin/code/regenerate", tenant(h.AdminCode.Regenerate))

	mux.HandleFunc("POST /api/inbound/{slug}", h.Inbound.Receive)

	base := deps.AdminPath
	guarded := func(fn http.HandlerFunc) http.Handler { return deps.AdminGuard(fn) }
	mux.HandleFunc("GET "+base, h.AdminCenter.LoginPage)
	mux.Handle("POST "+base+"/login", deps.LoginLimit(http.HandlerFunc(h.AdminCenter.Login)))
	mux.HandleFunc("POST "+base+"/logout", h.AdminCenter.Logout)
	mux.Handle("GET "+base+"/dashboard", guarded(h.AdminCenter.Dashboard))
	mux.Handle("GET "+base+"/api/organizations", guarded(h.AdminCenter.ListOrganizations))
	mux.Handle("GET "+base+"/api/users", guarded(h.AdminCenter.ListUsers))
	mux.Handle("GET "+base+"/api/audit", guarded(h.AdminCenter.Audit))
	mux.Handle("POST "+base+"/api/users/{id}/impersonate", guarded(h.AdminCenter.Impersonate))
	mux.Handle("POST "+base+"/api/users/{id}/email", guarded(h.AdminCenter.UpdateEmail))
	mux.Handle("POST "+base+"/api/users/{id}/password", guarded(h.AdminCenter.UpdatePassword))
	mux.Handle("POST "+base+"/api/users/{id}/ban", guarded(h.AdminCenter.Ban))
	mux.Handle("POST "+base+"/api/users/{id}/unban", guarded(h.AdminCenter.Unban))
	mux.Handle("POST "+base+"/api/users/{id}/unassign", guarded(h.AdminCenter.Unassign))

	return mux
}
