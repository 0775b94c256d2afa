package model

import "time"

// Role is the closed set of workflow roles. An order submitted by one role
// may only be processed by the other.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
)

// ParseRole maps free-form input onto the role enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleManager:
		return RoleManager, true
	}
	return "", false
}

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager
}

// Counterpart returns the opposite role, i.e. the role that gates this
// role's orders.
func (r Role) Counterpart() Role {
	if r == RoleAdmin {
		return RoleManager
	}
	return RoleAdmin
}

// User represents a registered account at a retail site. Username doubles as
// the login and equals the email address; both are fixed at registration.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Site         string
	CreatedAt    time.Time
}

// CanAct reports whether actor may approve or decline submitter's order.
// True only for an exact Admin/Manager pairing; equal or unknown roles never
// qualify, so same-role approval is structurally excluded.
func CanAct(actor, submitter Role) bool {
	if !actor.Valid() || !submitter.Valid() {
		return false
	}
	return actor != submitter
}
