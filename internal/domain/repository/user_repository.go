// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pawsconnect/internal/domain/entity"
	"pawsconnect/internal/errors"
)

// ErrUserNotFound is returned when no user record matches the lookup.
// It lets callers distinguish absence from a store failure without
// depending on database-specific errors.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for credential persistence.
type UserRepository interface {
	// Create persists a new user. The store assigns ID and CreatedAt.
	// A duplicate email surfaces as a domain conflict error.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by their login email.
	// Returns ErrUserNotFound when no record exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by their store-assigned id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// List returns all users, newest first. Admin-panel use only.
	List(ctx context.Context) ([]*entity.User, error)

	// Delete removes a user record by id.
	Delete(ctx context.Context, id int64) error
}
