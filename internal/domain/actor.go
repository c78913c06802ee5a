package domain

import "errors"

// Role represents the role of an authenticated actor
type Role string

const (
	RoleClient  Role = "client"
	RoleStylist Role = "stylist"
	RoleAdmin   Role = "admin"
)

// ErrUnknownRole возвращается при неизвестной роли актора
var ErrUnknownRole = errors.New("unknown actor role")

// ParseRole validates and converts a string into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleStylist, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

// Actor is the authenticated identity performing an operation.
// It is always passed explicitly; the core keeps no ambient session state.
type Actor struct {
	UserID int64
	Role   Role
}
