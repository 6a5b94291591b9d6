// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pawsconnect/internal/domain/entity"
	"pawsconnect/internal/errors"
)

var (
	// ErrServiceNotFound is returned when a care service is not found.
	ErrServiceNotFound = errors.New("care service not found")
	// ErrBookingNotFound is returned when a booking is not found.
	ErrBookingNotFound = errors.New("booking not found")
)

// CareServiceRepository defines catalog operations for care services.
type CareServiceRepository interface {
	// Create persists a new care service catalog entry.
	Create(ctx context.Context, svc *entity.CareService) error

	// FindByID retrieves a care service by id.
	// Returns ErrServiceNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.CareService, error)

	// List returns the whole catalog.
	List(ctx context.Context) ([]*entity.CareService, error)
}

// BookingRepository defines booking database operations. Bookings are plain
// inserts; conflict detection and capacity limits are out of scope.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *entity.Booking) error

	// FindByID retrieves a booking by id. Returns ErrBookingNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)

	// ListByUser returns all bookings made by a user, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Booking, error)

	// Delete removes a booking by id.
	Delete(ctx context.Context, id int64) error
}
