package domain

import "time"

// AdminConfigKeyLoginCode is the admin_center_config key holding the access code.
const AdminConfigKeyLoginCode = "login_code"

// AccessCode is the shared admin-center login code.
type AccessCode struct {
	Code      string    `json:"code"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdminSession is a freshly issued admin-center session cookie value.
type AdminSession struct {
	Value     string
	ExpiresAt time.Time
}

// AdminOrganization is the admin-center view of an organization.
type AdminOrganization struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	InviteCode          *string `json:"invite_code"`
	InviteCodeExpiresAt *string `json:"invite_code_expires_at"`
}

// Impersonation is the result of an admin acting as another user.
type Impersonation struct {
	AccessToken string
	RedirectURL string
	ExpiresAt   time.Time
}
