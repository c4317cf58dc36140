package users

import "time"

// Role represents the account type of a practice user
type Role string

const (
	RoleTherapist Role = "therapist"
	RoleAdmin     Role = "admin"
)

// User is the identity record produced by credential validation and embedded
// in auth tokens. Immutable once issued; a new login produces a new token.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	Password string    `json:"-"` // never serialised
	Created  time.Time `json:"-"`
}
