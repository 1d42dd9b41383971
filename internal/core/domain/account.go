package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUsernameTaken = errors.New("username already taken")
var ErrAccountNotFound = errors.New("account not found")
var ErrForbidden = errors.New("access forbidden")

// Account models a stored identity. Roles is a set at the storage level,
// but only the first role is ever embedded in an issued token.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FirstRole returns the role that goes into the token claim, or "" when the
// account has no roles assigned.
func (a *Account) FirstRole() string {
	if len(a.Roles) == 0 {
		return ""
	}
	return a.Roles[0]
}
