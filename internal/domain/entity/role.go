// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"slices"
	"strings"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCaregiver has full CRUD permissions over medical and alert data.
	RoleCaregiver Role = "caregiver"
	// RoleFamily has read-only permissions.
	RoleFamily Role = "family"
)

// DefaultRole is assigned when the identity provider carries no usable role claim.
const DefaultRole = RoleFamily

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCaregiver, RoleFamily:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RoleFromClaim resolves a role from a custom-claim value. DefaultRole applies only
// when the claim is absent or empty; any other value is kept as-is so that role
// checks reject it by name.
func RoleFromClaim(v any) Role {
	switch claim := v.(type) {
	case nil:
		return DefaultRole
	case string:
		if strings.TrimSpace(claim) == "" {
			return DefaultRole
		}

		return Role(claim)
	default:
		return Role(fmt.Sprint(claim))
	}
}
