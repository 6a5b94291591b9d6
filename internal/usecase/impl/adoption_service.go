package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "pawsconnect/internal/delivery/context"
	"pawsconnect/internal/domain/entity"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/repository"
	"pawsconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adoptionService implements the AdoptionUsecase interface.
type adoptionService struct {
	txManager    repository.TransactionManager
	petRepo      repository.PetRepository
	adoptionRepo repository.AdoptionRepository
	logger       *slog.Logger
}

// AdoptionServiceParams holds dependencies for adoptionService, injected by Fx.
type AdoptionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PetRepo      repository.PetRepository
	AdoptionRepo repository.AdoptionRepository
	Logger       *slog.Logger
}

// NewAdoptionService is the constructor for adoptionService.
func NewAdoptionService(params AdoptionServiceParams) usecase.AdoptionUsecase {
	return &adoptionService{
		txManager:    params.TxManager,
		petRepo:      params.PetRepo,
		adoptionRepo: params.AdoptionRepo,
		logger:       params.Logger,
	}
}

func (srv *adoptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestAdoption files a pending request for an available pet.
func (srv *adoptionService) RequestAdoption(ctx context.Context, petID, adopterID int64) (*entity.Adoption, error) {
	pet, err := srv.petRepo.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, domainerrors.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to load pet for adoption request")
	}

	if !pet.AvailableForAdoption {
		return nil, domainerrors.ErrPetUnavailable
	}

	adoption := &entity.Adoption{
		PetID:     petID,
		AdopterID: adopterID,
		Status:    entity.AdoptionPending,
	}

	if err := srv.adoptionRepo.Create(ctx, adoption); err != nil {
		return nil, errors.Wrap(err, "failed to create adoption request")
	}

	srv.log(ctx).Info("Adoption requested",
		slog.Int64("adoptionID", adoption.ID),
		slog.Int64("petID", petID),
		slog.Int64("adopterID", adopterID))

	return adoption, nil
}

func (srv *adoptionService) ListMyAdoptions(ctx context.Context, adopterID int64) ([]*entity.Adoption, error) {
	adoptions, err := srv.adoptionRepo.ListByAdopter(ctx, adopterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list adoption requests")
	}

	return adoptions, nil
}

// DecideAdoption settles a pending request. Approval updates the request,
// marks the pet unavailable, and notifies the adopter in one transaction;
// if any write fails, none of them persist.
func (srv *adoptionService) DecideAdoption(ctx context.Context, input usecase.DecideAdoptionInput) (*entity.Adoption, error) {
	var decided *entity.Adoption

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adoptionRepo := repoFactory.AdoptionRepo()

		adoption, err := adoptionRepo.FindByID(ctx, input.AdoptionID)
		if err != nil {
			if errors.Is(err, repository.ErrAdoptionNotFound) {
				return domainerrors.ErrAdoptionNotFound
			}

			return errors.Wrap(err, "failed to load adoption request")
		}

		if adoption.Status != entity.AdoptionPending {
			return domainerrors.ErrAdoptionDecided
		}

		pet, err := repoFactory.PetRepo().FindByID(ctx, adoption.PetID)
		if err != nil {
			if errors.Is(err, repository.ErrPetNotFound) {
				return domainerrors.ErrPetNotFound
			}

			return errors.Wrap(err, "failed to load pet for adoption decision")
		}

		var message string
		if input.Approve {
			adoption.Status = entity.AdoptionApproved
			message = fmt.Sprintf("Your adoption request for %s has been approved.", pet.Name)
		} else {
			adoption.Status = entity.AdoptionRejected
			message = fmt.Sprintf("Your adoption request for %s has been rejected.", pet.Name)
		}

		if err := adoptionRepo.Update(ctx, adoption); err != nil {
			return errors.Wrap(err, "failed to update adoption request")
		}

		if input.Approve {
			pet.AvailableForAdoption = false
			if err := repoFactory.PetRepo().Update(ctx, pet); err != nil {
				return errors.Wrap(err, "failed to mark pet unavailable")
			}
		}

		notification := &entity.Notification{
			UserID:  adoption.AdopterID,
			Message: message,
		}
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create adoption notification")
		}

		decided = adoption

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Adoption decision failed",
			slog.Int64("adoptionID", input.AdoptionID),
			slog.Bool("approve", input.Approve),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Adoption decided",
		slog.Int64("adoptionID", decided.ID),
		slog.String("status", string(decided.Status)))

	return decided, nil
}
