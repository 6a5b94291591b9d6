// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pawsconnect/internal/domain/entity"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/repository"
	"pawsconnect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements repository.ListingRepository using GORM.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid seller reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt

	return nil
}

func (repo *listingRepository) FindByID(ctx context.Context, id int64) (*entity.Listing, error) {
	var listingM model.ListingModel
	if err := repo.db.WithContext(ctx).First(&listingM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

func (repo *listingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	var models []model.ListingModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	listings := make([]*entity.Listing, 0, len(models))
	for i := range models {
		listings = append(listings, toListingDomain(&models[i]))
	}

	return listings, nil
}

func (repo *listingRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ListingModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func toListingDomain(m *model.ListingModel) *entity.Listing {
	return &entity.Listing{
		ID:          m.ID,
		SellerID:    m.SellerID,
		Title:       m.Title,
		Species:     m.Species,
		Breed:       m.Breed,
		Price:       m.Price,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
}

func fromListingDomain(l *entity.Listing) *model.ListingModel {
	return &model.ListingModel{
		ID:          l.ID,
		SellerID:    l.SellerID,
		Title:       l.Title,
		Species:     l.Species,
		Breed:       l.Breed,
		Price:       l.Price,
		Description: l.Description,
		ImageURL:    l.ImageURL,
		CreatedAt:   l.CreatedAt,
	}
}
