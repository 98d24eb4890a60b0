package domain

import "time"

// Role controls access to the admin back office.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User is a registered community member.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may use admin endpoints.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
