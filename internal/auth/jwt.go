package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// clockSkew is tolerated on exp/iat when tokens come from another host.
const clockSkew = 30 * time.Second

// DefaultImpersonator marks tokens minted from the admin center.
const DefaultImpersonator = "admin_center"

// Identity is the authenticated principal carried by an access token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	// ImpersonatedBy is set when the token was minted from the admin center.
	ImpersonatedBy string
	// TokenID is the jti claim, used to correlate a token with its audit entry.
	TokenID string
}

// JWTManager signs impersonation tokens and validates the HS256 access tokens
// presented on tenant routes. Both sides share one secret and issuer.
type JWTManager struct {
	secret []byte
	issuer string
	maxTTL time.Duration
	now    func() time.Time
}

// NewJWTManager returns a manager whose tokens never outlive maxTTL.
func NewJWTManager(secret, issuer string, maxTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		maxTTL: maxTTL,
		now:    time.Now,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Email          string `json:"email"`
	ImpersonatedBy string `json:"imp,omitempty"`
}

// GenerateImpersonationToken mints a token for id. A zero ttl, or one longer
// than the manager's maximum, is clamped to the maximum.
func (m *JWTManager) GenerateImpersonationToken(id Identity, ttl time.Duration) (string, time.Time, error) {
	if id.UserID == uuid.Nil {
		return "", time.Time{}, errors.New("impersonation token: user id is required")
	}
	if id.ImpersonatedBy == "" {
		id.ImpersonatedBy = DefaultImpersonator
	}
	if ttl <= 0 || ttl > m.maxTTL {
		ttl = m.maxTTL
	}

	now := m.now()
	exp := now.Add(ttl)
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email:          id.Email,
		ImpersonatedBy: id.ImpersonatedBy,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// ValidateAccessToken checks signature, algorithm, issuer and expiry and
// returns the identity in the token. Tokens without exp are rejected.
func (m *JWTManager) ValidateAccessToken(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, errors.New("token is empty")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(m.now),
	)

	var claims accessClaims
	if _, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject: %w", err)
	}

	return Identity{
		UserID:         userID,
		Email:          claims.Email,
		ImpersonatedBy: claims.ImpersonatedBy,
		TokenID:        claims.ID,
	}, nil
}
