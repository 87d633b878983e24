// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of a profile.
type Role string

const (
	// RoleUser indicates a regular storefront customer.
	RoleUser Role = "user"
	// RoleAdmin indicates a profile allowed to manage the catalog.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
