package domain

import (
	"errors"
	"strings"
)

// Role selects which account collection and variant schema applies. It is a
// closed set; anything else is a caller error at the boundary.
type Role string

const (
	RoleSeeker   Role = "seeker"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole validates a caller-supplied role tag.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleSeeker:
		return RoleSeeker, nil
	case RoleProvider:
		return RoleProvider, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string { return string(r) }
