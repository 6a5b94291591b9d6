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

// petRepository implements the repository.PetRepository interface using GORM.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{db: db}
}

func (repo *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required pet information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt

	return nil
}

func (repo *petRepository) FindByID(ctx context.Context, id int64) (*entity.Pet, error) {
	var petM model.PetModel
	if err := repo.db.WithContext(ctx).First(&petM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by id")
	}

	return toPetDomain(&petM), nil
}

func (repo *petRepository) List(ctx context.Context) ([]*entity.Pet, error) {
	var models []model.PetModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	pets := make([]*entity.Pet, 0, len(models))
	for i := range models {
		pets = append(pets, toPetDomain(&models[i]))
	}

	return pets, nil
}

func (repo *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	result := repo.db.WithContext(ctx).Model(&model.PetModel{}).
		Where("id = ?", petM.ID).
		Updates(map[string]any{
			"name":                   petM.Name,
			"species":                petM.Species,
			"breed":                  petM.Breed,
			"age":                    petM.Age,
			"size":                   petM.Size,
			"description":            petM.Description,
			"image_url":              petM.ImageURL,
			"owner_id":               petM.OwnerID,
			"available_for_adoption": petM.AvailableForAdoption,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

func (repo *petRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PetModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

func toPetDomain(m *model.PetModel) *entity.Pet {
	return &entity.Pet{
		ID:                   m.ID,
		Name:                 m.Name,
		Species:              m.Species,
		Breed:                m.Breed,
		Age:                  m.Age,
		Size:                 m.Size,
		Description:          m.Description,
		ImageURL:             m.ImageURL,
		OwnerID:              m.OwnerID,
		AvailableForAdoption: m.AvailableForAdoption,
		CreatedAt:            m.CreatedAt,
	}
}

func fromPetDomain(p *entity.Pet) *model.PetModel {
	return &model.PetModel{
		ID:                   p.ID,
		Name:                 p.Name,
		Species:              p.Species,
		Breed:                p.Breed,
		Age:                  p.Age,
		Size:                 p.Size,
		Description:          p.Description,
		ImageURL:             p.ImageURL,
		OwnerID:              p.OwnerID,
		AvailableForAdoption: p.AvailableForAdoption,
		CreatedAt:            p.CreatedAt,
	}
}
