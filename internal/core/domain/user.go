package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrUserDisabled = errors.New("user account is disabled")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account in the salon system. Email doubles as the login
// identifier. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone,omitempty"`
	Roles        []string  `json:"roles"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	IsActive     bool      `json:"isActive"`
}

// NormalizeRoles returns the role set with RoleUser guaranteed present,
// unknown roles dropped and duplicates removed. Order is stable: RoleUser
// first, then RoleAdmin when granted.
func NormalizeRoles(roles []string) []string {
	out := []string{RoleUser}
	for _, r := range roles {
		if r == RoleAdmin {
			out = append(out, RoleAdmin)
			break
		}
	}
	return out
}

// GetRoles returns the user's effective roles, always including RoleUser.
func (u *User) GetRoles() []string {
	return NormalizeRoles(u.Roles)
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	for _, r := range u.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}
