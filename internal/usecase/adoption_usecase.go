package usecase

import (
	"context"

	"pawsconnect/internal/domain/entity"
)

// DecideAdoptionInput carries an admin's decision on a pending request.
// Approve true approves, false rejects.
type DecideAdoptionInput struct {
	AdoptionID int64
	Approve    bool
}

// AdoptionUsecase defines adoption request operations.
type AdoptionUsecase interface {
	// RequestAdoption files a request by adopterID for the given pet.
	// The pet must exist and be available for adoption.
	RequestAdoption(ctx context.Context, petID, adopterID int64) (*entity.Adoption, error)

	// ListMyAdoptions returns the requests filed by a user.
	ListMyAdoptions(ctx context.Context, adopterID int64) ([]*entity.Adoption, error)

	// DecideAdoption approves or rejects a pending request. Approval marks
	// the pet unavailable and notifies the adopter, all in one transaction.
	// A request that was already decided cannot be decided again.
	DecideAdoption(ctx context.Context, input DecideAdoptionInput) (*entity.Adoption, error)
}
