package usecase

import (
	"context"

	"pawsconnect/internal/domain/entity"
)

// CreateListingInput defines a new sale offer. Image is mandatory.
type CreateListingInput struct {
	SellerID    int64
	Title       string
	Species     string
	Breed       string
	Price       float64
	Description string
	Image       *ImageUpload
}

// ListingUsecase defines marketplace sell-listing operations.
type ListingUsecase interface {
	// CreateListing stores the image, then persists the listing pointing
	// at it. If the database write fails the image is removed again.
	CreateListing(ctx context.Context, input CreateListingInput) (*entity.Listing, error)

	// ListListings returns all listings, newest first. Public.
	ListListings(ctx context.Context) ([]*entity.Listing, error)

	// GetListing returns one listing by id.
	GetListing(ctx context.Context, id int64) (*entity.Listing, error)

	// DeleteListing removes a listing. Only the seller or an admin may delete.
	DeleteListing(ctx context.Context, id int64, actorID int64, actorRole entity.Role) error
}
