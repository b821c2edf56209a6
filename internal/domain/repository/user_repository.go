// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"localguide/internal/domain/entity"
	"localguide/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by the session provider's subject.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindOrCreate returns the stored user for user.ID, inserting it on first sign-in.
	FindOrCreate(ctx context.Context, user *entity.User) (*entity.User, error)

	// List returns every user ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)

	// UpdateRole sets the role of an existing user.
	// Returns ErrUserNotFound when no row matches.
	UpdateRole(ctx context.Context, id string, role entity.Role) error
}
