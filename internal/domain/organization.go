package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrgRole is a member's role inside an organization.
type OrgRole string

const (
	OrgRoleOwner     OrgRole = "owner"
	OrgRoleAdmin     OrgRole = "admin"
	OrgRoleModerator OrgRole = "moderator"
	OrgRoleViewer    OrgRole = "viewer"
)

func (r OrgRole) String() string { return string(r) }

func (r OrgRole) IsValid() bool {
	switch r {
	case OrgRoleOwner, OrgRoleAdmin, OrgRoleModerator, OrgRoleViewer:
		return true
	}
	return false
}

// Organization is a tenant. Settings is an open JSON document; Magic Extract
// rules live under SettingsKeyMagicExtractRules.
type Organization struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	OwnerID   uuid.UUID
	Settings  map[string]any
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settings keys inside Organization.Settings.
const (
	SettingsKeyMagicExtractRules       = "magic_extract_rules"
	SettingsKeyInvitationCode          = "invitation_code"
	SettingsKeyInvitationCodeExpiresAt = "invitation_code_expires_at"
)

// SettingString returns a string setting, or nil when absent or not a string.
func (o Organization) SettingString(key string) *string {
	v, ok := o.Settings[key].(string)
	if !ok {
		return nil
	}
	return &v
}

// Membership links a user to an organization.
type Membership struct {
	OrganizationID   uuid.UUID
	OrganizationName string
	UserID           uuid.UUID
	Role             OrgRole
	IsActive         bool
}
