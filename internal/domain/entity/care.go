package entity

import "time"

// CareCategory distinguishes the kinds of care a service covers.
type CareCategory string

const (
	CareGrooming     CareCategory = "grooming"
	CareBoarding     CareCategory = "boarding"
	CareConsultation CareCategory = "consultation"
)

// CareService is a catalog entry for grooming, boarding stays, or vet
// consultations that users can book.
type CareService struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Price           float64      `json:"price"`
	DurationMinutes int          `json:"duration_minutes"`
	Category        CareCategory `json:"category"`
}

// BookingStatus tracks a booking's state. Bookings are plain inserts;
// there is no conflict detection or capacity limiting.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
)

// Booking reserves a care service for a user at a given date.
type Booking struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	ServiceID   int64         `json:"service_id"`
	BookingDate time.Time     `json:"booking_date"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
