package entity

import "time"

// Pet is a single animal listed for adoption.
type Pet struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Species              string    `json:"species"`
	Breed                string    `json:"breed"`
	Age                  int       `json:"age"`
	Size                 string    `json:"size"` // Small, Medium, Large
	Description          string    `json:"description"`
	ImageURL             string    `json:"image_url"`
	OwnerID              int64     `json:"owner_id"` // Zero when the pet has no registered owner yet.
	AvailableForAdoption bool      `json:"available_for_adoption"`
	CreatedAt            time.Time `json:"created_at"`
}

// AdoptionStatus tracks the lifecycle of an adoption request.
type AdoptionStatus string

const (
	AdoptionPending  AdoptionStatus = "pending"
	AdoptionApproved AdoptionStatus = "approved"
	AdoptionRejected AdoptionStatus = "rejected"
)

// Adoption is a request by a user to adopt a specific pet.
type Adoption struct {
	ID        int64          `json:"id"`
	PetID     int64          `json:"pet_id"`
	AdopterID int64          `json:"adopter_id"`
	Status    AdoptionStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
