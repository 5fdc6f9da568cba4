package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleBusiness indicates a business owner account.
	RoleBusiness Role = "business"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
	// RoleModerator indicates a content moderator.
	RoleModerator Role = "moderator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleBusiness, RoleAdmin, RoleModerator:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may moderate content.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleModerator
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// HasStaff reports whether any role in the slice is a staff role.
func (rs Roles) HasStaff() bool {
	return slices.ContainsFunc(rs, Role.IsStaff)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
