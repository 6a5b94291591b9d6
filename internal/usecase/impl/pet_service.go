package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "pawsconnect/internal/delivery/context"
	"pawsconnect/internal/domain/entity"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/repository"
	"pawsconnect/internal/domain/service"
	"pawsconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// petService implements the PetUsecase interface.
type petService struct {
	petRepo    repository.PetRepository
	imageStore service.ImageStore
	logger     *slog.Logger
}

// PetServiceParams holds dependencies for petService, injected by Fx.
type PetServiceParams struct {
	fx.In

	PetRepo    repository.PetRepository
	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(params PetServiceParams) usecase.PetUsecase {
	return &petService{
		petRepo:    params.PetRepo,
		imageStore: params.ImageStore,
		logger:     params.Logger,
	}
}

func (srv *petService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePet saves the uploaded image first, then persists the pet record.
// When the insert fails the stored image is removed again so the blob store
// does not accumulate orphans.
func (srv *petService) CreatePet(ctx context.Context, input usecase.CreatePetInput) (*entity.Pet, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Species) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and species are required")
	}

	filename, err := imageFilename(input.Image, input.OwnerID)
	if err != nil {
		return nil, err
	}

	imageURL, err := srv.imageStore.Save(ctx, filename, input.Image.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store pet image", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store pet image")
	}

	pet := &entity.Pet{
		Name:                 strings.TrimSpace(input.Name),
		Species:              strings.TrimSpace(input.Species),
		Breed:                input.Breed,
		Age:                  input.Age,
		Size:                 input.Size,
		Description:          input.Description,
		ImageURL:             imageURL,
		OwnerID:              input.OwnerID,
		AvailableForAdoption: true,
	}

	if err := srv.petRepo.Create(ctx, pet); err != nil {
		if delErr := srv.imageStore.Delete(ctx, filename); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned pet image", slog.String("filename", filename), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to create pet")
	}

	srv.log(ctx).Info("Pet created", slog.Int64("petID", pet.ID), slog.Int64("ownerID", pet.OwnerID))

	return pet, nil
}

func (srv *petService) GetPet(ctx context.Context, id int64) (*entity.Pet, error) {
	pet, err := srv.petRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to get pet")
	}

	return pet, nil
}

func (srv *petService) ListPets(ctx context.Context) ([]*entity.Pet, error) {
	pets, err := srv.petRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	return pets, nil
}

// DeletePet removes a pet. Admins may delete any pet; everyone else only
// their own.
func (srv *petService) DeletePet(ctx context.Context, id int64, actorID int64, actorRole entity.Role) error {
	pet, err := srv.petRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return domainerrors.ErrPetNotFound
		}

		return errors.Wrap(err, "failed to load pet for deletion")
	}

	if actorRole != entity.RoleAdmin && pet.OwnerID != actorID {
		return domainerrors.ErrForbidden
	}

	if err := srv.petRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return domainerrors.ErrPetNotFound
		}

		return errors.Wrap(err, "failed to delete pet")
	}

	srv.log(ctx).Info("Pet deleted", slog.Int64("petID", id), slog.Int64("actorID", actorID))

	return nil
}
