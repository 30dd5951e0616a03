package model

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a credential record. The password hash never leaves the server:
// it is excluded from every JSON encoding.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the recognized role values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
