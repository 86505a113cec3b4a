package ctxutil

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey       ctxKey = "user_id"
	userEmailKey    ctxKey = "user_email"
	orgIDKey        ctxKey = "org_id"
	requestIDKey    ctxKey = "request_id"
	adminSessionKey ctxKey = "admin_session"
	scopeKey        ctxKey = "scope"
)

// Scope is a per-request record shared by every layer of the handler chain.
// Values stored deeper in the chain (after authentication) are copied into it
// so that outer middleware can still see them once the handler returns.
type Scope struct {
	mu     sync.Mutex
	userID uuid.UUID
	orgID  uuid.UUID
	admin  bool
}

// WithScope attaches a new Scope seeded from the identities ctx already holds.
func WithScope(ctx context.Context) (context.Context, *Scope) {
	s := &Scope{}
	s.userID, _ = UserIDFromCtx(ctx)
	s.orgID, _ = OrgIDFromCtx(ctx)
	s.admin = IsAdminSession(ctx)
	return context.WithValue(ctx, scopeKey, s), s
}

// Snapshot returns the identities recorded so far; absent ids are uuid.Nil.
func (s *Scope) Snapshot() (userID, orgID uuid.UUID, admin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID, s.orgID, s.admin
}

func record(ctx context.Context, fn func(s *Scope)) {
	s, ok := ctx.Value(scopeKey).(*Scope)
	if !ok {
		return
	}
	s.mu.Lock()
	fn(s)
	s.mu.Unlock()
}

// WithUserID stores the user ID in the context and the enclosing Scope.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	record(ctx, func(s *Scope) { s.userID = id })
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithUserEmail stores the authenticated user's email in the context.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// UserEmailFromCtx returns the authenticated user's email, or "" if absent.
func UserEmailFromCtx(ctx context.Context) string {
	email, _ := ctx.Value(userEmailKey).(string)
	return email
}

// WithOrgID stores the current organization ID in the context.
func WithOrgID(ctx context.Context, id uuid.UUID) context.Context {
	record(ctx, func(s *Scope) { s.orgID = id })
	return context.WithValue(ctx, orgIDKey, id)
}

// OrgIDFromCtx extracts the current organization ID from the context.
func OrgIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(orgIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithAdminSession marks the context as carrying a verified admin center session.
func WithAdminSession(ctx context.Context) context.Context {
	record(ctx, func(s *Scope) { s.admin = true })
	return context.WithValue(ctx, adminSessionKey, true)
}

// IsAdminSession reports whether a verified admin center session is present.
func IsAdminSession(ctx context.Context) bool {
	ok, _ := ctx.Value(adminSessionKey).(bool)
	return ok
}
