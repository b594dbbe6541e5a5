// Package auth holds the resolved caller identity (Principal) and the error
// taxonomy shared by the token codec, the HTTP ingress middleware, and the
// gRPC interceptors.
package auth

import "strings"

// Role is the closed set of roles a principal can hold.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a role claim to a Role. Accepts the bare form ("ADMIN") and
// the prefixed form ("ROLE_ADMIN") some clients still send; anything else
// falls back to RoleUser. This is the only place role strings are normalized.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "ROLE_")) {
	case "ADMIN":
		return RoleAdmin
	default:
		return RoleUser
	}
}

// Authority returns the prefixed form the authorization layer expects.
func (r Role) Authority() string {
	return "ROLE_" + string(r)
}

// Principal is the validated identity attached to a request or RPC call.
// It is derived from token claims, never persisted, and immutable once built;
// its lifetime is one request or one call.
type Principal struct {
	UserID int64
	Email  string
	Role   Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
