package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditActorAdminCenter identifies who performed an audited admin action. Admin Center
// sessions are shared, so they are recorded as a single actor.
const AuditActorAdminCenter = "admin_center"

// EntityType identifies the kind of entity an audit record is about.
type EntityType string

const (
	EntityTypeUser       EntityType = "USER"
	EntityTypeMembership EntityType = "MEMBERSHIP"
	EntityTypeAccessCode EntityType = "ACCESS_CODE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeMembership, EntityTypeAccessCode:
		return true
	}
	return false
}

// AuditAction is the kind of admin action recorded in the audit log.
type AuditAction string

const (
	AuditActionImpersonate    AuditAction = "IMPERSONATE"
	AuditActionUpdateEmail    AuditAction = "UPDATE_EMAIL"
	AuditActionResetPassword  AuditAction = "RESET_PASSWORD"
	AuditActionBan            AuditAction = "BAN"
	AuditActionUnban          AuditAction = "UNBAN"
	AuditActionUnassign       AuditAction = "UNASSIGN"
	AuditActionRegenerateCode AuditAction = "REGENERATE_CODE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionImpersonate, AuditActionUpdateEmail, AuditActionResetPassword,
		AuditActionBan, AuditActionUnban, AuditActionUnassign, AuditActionRegenerateCode:
		return true
	}
	return false
}

// AuditRecord is one entry of the append-only admin audit log.
type AuditRecord struct {
	ID         uuid.UUID      `json:"id"`
	Actor      string         `json:"actor"`
	EntityType EntityType     `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id"`
	Action     AuditAction    `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
