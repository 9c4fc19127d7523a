package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ModerationAction identifies a moderation side effect for logs and metrics.
type ModerationAction string

const (
	ModerationActionFlag    ModerationAction = "flag"
	ModerationActionRestore ModerationAction = "restore"
	ModerationActionUpdate  ModerationAction = "update"

	ModerationActionFreeze   ModerationAction = "freeze"
	ModerationActionUnfreeze ModerationAction = "unfreeze"
	ModerationActionPromote  ModerationAction = "promote"
	ModerationActionDemote   ModerationAction = "demote"
)

func (a ModerationAction) String() string { return string(a) }

// UserSortField is a column the admin user list may be ordered by.
type UserSortField string

const (
	UserSortCreatedAt    UserSortField = "created_at"
	UserSortUsername     UserSortField = "username"
	UserSortEmail        UserSortField = "email"
	UserSortTimesFlagged UserSortField = "times_flagged"
)

func (f UserSortField) IsValid() bool {
	switch f {
	case UserSortCreatedAt, UserSortUsername, UserSortEmail, UserSortTimesFlagged:
		return true
	}
	return false
}
