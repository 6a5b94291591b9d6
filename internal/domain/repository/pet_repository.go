// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pawsconnect/internal/domain/entity"
	"pawsconnect/internal/errors"
)

var (
	// ErrPetNotFound is returned when a pet is not found.
	ErrPetNotFound = errors.New("pet not found")
	// ErrAdoptionNotFound is returned when an adoption request is not found.
	ErrAdoptionNotFound = errors.New("adoption request not found")
)

// PetRepository defines pet-related database operations.
type PetRepository interface {
	// Create persists a new pet. The store assigns ID and CreatedAt.
	Create(ctx context.Context, pet *entity.Pet) error

	// FindByID retrieves a pet by id. Returns ErrPetNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Pet, error)

	// List returns all pets, newest first.
	List(ctx context.Context) ([]*entity.Pet, error)

	// Update modifies an existing pet record.
	Update(ctx context.Context, pet *entity.Pet) error

	// Delete removes a pet by id.
	Delete(ctx context.Context, id int64) error
}

// AdoptionRepository defines adoption-request database operations.
type AdoptionRepository interface {
	// Create persists a new adoption request.
	Create(ctx context.Context, adoption *entity.Adoption) error

	// FindByID retrieves an adoption request by id.
	// Returns ErrAdoptionNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Adoption, error)

	// ListByAdopter returns all adoption requests made by a user.
	ListByAdopter(ctx context.Context, adopterID int64) ([]*entity.Adoption, error)

	// Update modifies an existing adoption request (status changes).
	Update(ctx context.Context, adoption *entity.Adoption) error
}
