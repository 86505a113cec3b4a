package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash *string
	Banned       bool
	BannedReason *string
	BannedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBanned returns true if an administrator has banned the user.
func (u *User) IsBanned() bool {
	return u.Banned
}

// UserWithMemberships is the admin-center view of a user.
type UserWithMemberships struct {
	User
	Memberships []Membership
}
