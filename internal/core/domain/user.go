package domain

import "time"

const (
	RoleHost  = "Host"
	RoleGuest = "Guest"
)

// IsValidRole reports whether role is one of the known user roles.
func IsValidRole(role string) bool {
	return role == RoleHost || role == RoleGuest
}

// User models a marketplace account. The password hash and timestamps are
// never part of the JSON representation.
type User struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
