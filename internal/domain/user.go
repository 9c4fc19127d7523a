package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the account that owns reading logs. A frozen user keeps their
// data but can no longer act.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Role         UserRole
	TimesFlagged int
	Frozen       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin capability.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}

// Principal is the authenticated caller as resolved from the user directory.
type Principal struct {
	UserID uuid.UUID
	Role   UserRole
}

// CanActOn is the single access rule for owned resources:
// the owner may proceed, and so may any admin.
func (p Principal) CanActOn(ownerID uuid.UUID) bool {
	if p.UserID == uuid.Nil {
		return false
	}
	return p.UserID == ownerID || p.Role.IsAdmin()
}

// IsAdmin reports whether the principal holds the admin capability.
func (p Principal) IsAdmin() bool {
	return p.UserID != uuid.Nil && p.Role.IsAdmin()
}
