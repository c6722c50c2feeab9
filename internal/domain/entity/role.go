// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of principal interacting with the portal.
type Role string

const (
	// RoleCandidate indicates a job-seeking candidate.
	RoleCandidate Role = "candidate"
	// RoleCompany indicates a hiring company.
	RoleCompany Role = "company"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCandidate, RoleCompany, RoleAdmin:
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

// ParseRole converts a raw string into a Role, reporting whether it is known.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
