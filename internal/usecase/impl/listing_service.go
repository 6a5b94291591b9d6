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

// listingService implements the ListingUsecase interface.
type listingService struct {
	listingRepo repository.ListingRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for listingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewListingService is the constructor for listingService.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		listingRepo: params.ListingRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing saves the uploaded image first, then persists the listing.
// A failed insert removes the stored image again.
func (srv *listingService) CreateListing(ctx context.Context, input usecase.CreateListingInput) (*entity.Listing, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Species) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title and species are required")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	filename, err := imageFilename(input.Image, input.SellerID)
	if err != nil {
		return nil, err
	}

	imageURL, err := srv.imageStore.Save(ctx, filename, input.Image.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store listing image", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store listing image")
	}

	listing := &entity.Listing{
		SellerID:    input.SellerID,
		Title:       strings.TrimSpace(input.Title),
		Species:     strings.TrimSpace(input.Species),
		Breed:       input.Breed,
		Price:       input.Price,
		Description: input.Description,
		ImageURL:    imageURL,
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		if delErr := srv.imageStore.Delete(ctx, filename); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned listing image", slog.String("filename", filename), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to create listing")
	}

	srv.log(ctx).Info("Listing created", slog.Int64("listingID", listing.ID), slog.Int64("sellerID", listing.SellerID))

	return listing, nil
}

func (srv *listingService) ListListings(ctx context.Context) ([]*entity.Listing, error) {
	listings, err := srv.listingRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return listings, nil
}

func (srv *listingService) GetListing(ctx context.Context, id int64) (*entity.Listing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to get listing")
	}

	return listing, nil
}

// DeleteListing removes a listing. Admins may delete any listing; everyone
// else only their own.
func (srv *listingService) DeleteListing(ctx context.Context, id int64, actorID int64, actorRole entity.Role) error {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound
		}

		return errors.Wrap(err, "failed to load listing for deletion")
	}

	if actorRole != entity.RoleAdmin && listing.SellerID != actorID {
		return domainerrors.ErrForbidden
	}

	if err := srv.listingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingNotFound
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	srv.log(ctx).Info("Listing deleted", slog.Int64("listingID", id), slog.Int64("actorID", actorID))

	return nil
}
