// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account known to the guide. Identities are minted by the external
// session provider, so the ID is the provider's subject rather than a generated key.
type User struct {
	ID        string    // Subject issued by the session provider.
	Email     string    // Primary contact email.
	Name      string    // Display name.
	Role      Role      // Elevated role assignment; RoleUser unless promoted.
	CreatedAt time.Time // Timestamp of the first sign-in.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
