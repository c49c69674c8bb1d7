// Package user defines the User entity and its role model. The
// authoritative user store is external; the core only reads users to
// stamp audit records and to gate mutations by role.
package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is the coarse access level of a user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// User is an account known to the system. PasswordHash holds a salted
// bcrypt hash; the plaintext password never leaves the auth service.
type User struct {
	ID           uuid.UUID
	Username     string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}
