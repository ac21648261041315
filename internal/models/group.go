package models

import "time"

// Group is a named pool of users who share expenses.
// Groups are pure metadata: balances and debts are derived from the
// expenses and splits that reference the group, never stored on it.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g. "Trip to Lisbon").
	Name string

	// CreatedBy is the user who created the group. That user is also
	// recorded in the roster as the group's owner.
	CreatedBy string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberRole is a member's role within a group.
type MemberRole string

const (
	// RoleOwner marks the group creator. Exactly one owner is set at
	// group creation.
	RoleOwner MemberRole = "owner"

	// RoleMember is the default role for everyone else.
	RoleMember MemberRole = "member"
)

// Valid reports whether the role is one of the known roles.
func (r MemberRole) Valid() bool {
	return r == RoleOwner || r == RoleMember
}

// Membership places one user in one group's roster.
// The (GroupID, UserID) pair is unique: re-adding an existing member
// updates the role instead of duplicating the row.
//
// Removing a membership never touches expenses or splits that reference
// the user; ledger history is immutable with respect to the roster.
type Membership struct {
	GroupID  string
	UserID   string
	Role     MemberRole
	JoinedAt time.Time
}
