package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Session verification failures.
var (
	ErrSessionMalformed = errors.New("session: malformed value")
	ErrSessionSignature = errors.New("session: signature mismatch")
	ErrSessionExpired   = errors.New("session: expired")
)

// sessionPayload is the signed part of an admin session cookie.
type sessionPayload struct {
	Exp int64 `json:"exp"`
}

// SessionSigner issues and verifies stateless admin session values of the form
// base64url(json{"exp":unix}) + "." + base64url(HMAC-SHA256(segment, secret)).
// No server-side state exists: a value stays valid until exp regardless of
// later access-code changes.
type SessionSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionSigner creates a signer. now may be nil (time.Now is used).
func NewSessionSigner(secret string, ttl time.Duration, now func() time.Time) *SessionSigner {
	if now == nil {
		now = time.Now
	}
	return &SessionSigner{secret: []byte(secret), ttl: ttl, now: now}
}

// TTL returns the fixed session lifetime.
func (s *SessionSigner) TTL() time.Duration { return s.ttl }

// Issue returns a new session value expiring ttl from now.
func (s *SessionSigner) Issue() (string, time.Time, error) {
	exp := s.now().Add(s.ttl).Truncate(time.Second)
	value, err := s.Sign(exp)
	if err != nil {
		return "", time.Time{}, err
	}
	return value, exp, nil
}

// Sign encodes and signs a payload with the given expiry.
func (s *SessionSigner) Sign(exp time.Time) (string, error) {
	raw, err := json.Marshal(sessionPayload{Exp: exp.Unix()})
	if err != nil {
		return "", fmt.Errorf("marshal session payload: %w", err)
	}
	segment := base64.RawURLEncoding.EncodeToString(raw)
	return segment + "." + s.signature(segment), nil
}

// Verify checks the signature and expiry of a session value.
func (s *SessionSigner) Verify(value string) error {
	segment, sig, ok := strings.Cut(value, ".")
	if !ok || segment == "" || sig == "" || strings.Contains(sig, ".") {
		return ErrSessionMalformed
	}

	if !hmac.Equal([]byte(sig), []byte(s.signature(segment))) {
		return ErrSessionSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return ErrSessionMalformed
	}
	var p sessionPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.Exp == 0 {
		return ErrSessionMalformed
	}

	if p.Exp <= s.now().Unix() {
		return ErrSessionExpired
	}
	return nil
}

func (s *SessionSigner) signature(segment string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(segment))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
