package usecase

import (
	"context"
	"io"

	"pawsconnect/internal/domain/entity"
)

// ImageUpload carries one uploaded image from a multipart form. Filename is
// the client-supplied name; only its extension is trusted, and only after
// validation against the allow-list.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// CreatePetInput defines the data required to list a pet for adoption.
// Image is mandatory.
type CreatePetInput struct {
	Name        string
	Species     string
	Breed       string
	Age         int
	Size        string
	Description string
	OwnerID     int64
	Image       *ImageUpload
}

// PetUsecase defines pet catalog operations.
type PetUsecase interface {
	// CreatePet stores the image, then persists the pet pointing at it.
	// If the database write fails the stored image is removed again.
	CreatePet(ctx context.Context, input CreatePetInput) (*entity.Pet, error)

	// GetPet returns a single pet by id.
	GetPet(ctx context.Context, id int64) (*entity.Pet, error)

	// ListPets returns all pets, newest first.
	ListPets(ctx context.Context) ([]*entity.Pet, error)

	// DeletePet removes a pet. Only the owner or an admin may delete.
	DeletePet(ctx context.Context, id int64, actorID int64, actorRole entity.Role) error
}
