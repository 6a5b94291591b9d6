package usecase

import (
	"context"
	"time"

	"pawsconnect/internal/domain/entity"
)

// CreateCareServiceInput defines a new catalog entry. Admin only.
type CreateCareServiceInput struct {
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Category        string
}

// BookServiceInput reserves a care service for a user at a date.
type BookServiceInput struct {
	UserID      int64
	ServiceID   int64
	BookingDate time.Time
}

// CareUsecase defines the care service catalog and booking operations.
// Bookings are plain inserts; there is no conflict detection.
type CareUsecase interface {
	// CreateService adds a grooming, boarding, or consultation entry to
	// the catalog.
	CreateService(ctx context.Context, input CreateCareServiceInput) (*entity.CareService, error)

	// ListServices returns the whole catalog. Public.
	ListServices(ctx context.Context) ([]*entity.CareService, error)

	// GetService returns one catalog entry by id.
	GetService(ctx context.Context, id int64) (*entity.CareService, error)

	// BookService creates a pending booking for an existing service.
	BookService(ctx context.Context, input BookServiceInput) (*entity.Booking, error)

	// ListMyBookings returns the bookings made by a user, newest first.
	ListMyBookings(ctx context.Context, userID int64) ([]*entity.Booking, error)

	// CancelBooking deletes a booking. Only its owner may cancel.
	CancelBooking(ctx context.Context, bookingID, userID int64) error
}
