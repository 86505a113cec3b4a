package middleware

import (
	"net/http"

	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// AdminSessionCookie is the name of the admin center session cookie.
const AdminSessionCookie = "admin_center_session"

type sessionVerifier interface {
	VerifySession(value string) error
}

// AdminSession guards admin center routes. Requests without a valid session
// cookie are redirected to loginPath (GET and HEAD) or rejected with 401.
func AdminSession(verifier sessionVerifier, loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AdminSessionCookie)
			if err != nil || verifier.VerifySession(cookie.Value) != nil {
				if r.Method == http.MethodGet || r.Method == http.MethodHead {
					http.Redirect(w, r, loginPath, http.StatusSeeOther)
					return
				}
				writeError(w, http.StatusUnauthorized, "admin session required")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithAdminSession(r.Context())))
		})
	}
}
