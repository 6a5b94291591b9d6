// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pawsconnect/internal/domain/entity"
	"pawsconnect/internal/errors"
)

// ErrListingNotFound is returned when a sell listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines sell-listing database operations.
type ListingRepository interface {
	// Create persists a new listing.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a listing by id. Returns ErrListingNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Listing, error)

	// List returns all listings, newest first.
	List(ctx context.Context) ([]*entity.Listing, error)

	// Delete removes a listing by id.
	Delete(ctx context.Context, id int64) error
}
