package models

import "strings"

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleStoreOwner Role = "store_owner"
	RoleNormalUser Role = "normal_user"
)

// Roles lists every valid role in a stable order.
var Roles = []Role{RoleAdmin, RoleStoreOwner, RoleNormalUser}

// ParseRole maps s onto a Role. Matching is case-insensitive and ignores
// surrounding whitespace; anything else is rejected.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleStoreOwner:
		return RoleStoreOwner, true
	case RoleNormalUser:
		return RoleNormalUser, true
	}
	return "", false
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok && string(r) == strings.ToLower(string(r))
}

func (r Role) String() string { return string(r) }
