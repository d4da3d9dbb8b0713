// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

package sec

// # User Roles

// UserRole represents the authorization level granted to an account by the
// auth service. WorldDoc never assigns roles itself, it only reads them.
type UserRole string

const (
	// Owns the installation, including other admins
	RoleSuperAdmin UserRole = "superadmin"

	// Full access to the authoring panel
	RoleAdmin UserRole = "admin"

	// Can edit, publish and archive any topic
	RoleEditor UserRole = "editor"

	// Can draft topics
	RoleAuthor UserRole = "author"

	// Read-only access to the panel
	RoleViewer UserRole = "viewer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() > 0 && r.level() >= target.level()
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	return r.level() > 0
}

func (r UserRole) level() int {
	switch r {
	case RoleSuperAdmin:
		return 50
	case RoleAdmin:
		return 40
	case RoleEditor:
		return 30
	case RoleAuthor:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
