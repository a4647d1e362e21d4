// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// Role represents the type of role a user can have on the platform.
type Role string

const (
	// RoleWholesaler indicates a wholesaler selling stock in bulk.
	RoleWholesaler Role = "wholesaler"
	// RoleRetailer indicates a retailer buying stock for resale.
	RoleRetailer Role = "retailer"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleSupport indicates a support agent.
	RoleSupport Role = "support"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleWholesaler, RoleRetailer, RoleAdmin, RoleSupport:
		return true
	default:
		return false
	}
}

// CanRegister reports whether the role may be requested through self
// registration. Admin and support accounts are provisioned out of band.
func (r Role) CanRegister() bool {
	return r == RoleWholesaler || r == RoleRetailer
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
