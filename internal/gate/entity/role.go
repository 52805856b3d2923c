// Package entity holds the gate domain types.
package entity

// Role is an opaque role tag carried inside token claims. Matching against
// allow-sets is exact and case-sensitive; there is no role hierarchy.
type Role string

const (
	RoleUnknown Role = ""
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleService Role = "service"
)

// Roles lists the known role vocabulary in a stable order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleUser, RoleService}
}

// RoleFromString maps a raw claim value onto the known vocabulary, returning
// RoleUnknown for anything outside it. Tokens may still carry roles outside
// the vocabulary; they simply never match a registered allow-set.
func RoleFromString(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	case "service":
		return RoleService
	default:
		return RoleUnknown
	}
}

// String returns the raw role tag.
func (r Role) String() string {
	return string(r)
}

// Known reports whether the role belongs to the vocabulary.
func (r Role) Known() bool {
	return RoleFromString(string(r)) != RoleUnknown
}
