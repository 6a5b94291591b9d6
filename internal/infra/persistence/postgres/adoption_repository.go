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

// adoptionRepository implements the repository.AdoptionRepository interface using GORM.
type adoptionRepository struct {
	db *gorm.DB
}

// NewAdoptionRepository is the constructor for adoptionRepository.
func NewAdoptionRepository(db *gorm.DB) repository.AdoptionRepository {
	return &adoptionRepository{db: db}
}

func (repo *adoptionRepository) Create(ctx context.Context, adoption *entity.Adoption) error {
	adoptionM := fromAdoptionDomain(adoption)

	if err := repo.db.WithContext(ctx).Create(adoptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid pet or adopter reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create adoption request")
	}

	adoption.ID = adoptionM.ID
	adoption.CreatedAt = adoptionM.CreatedAt

	return nil
}

func (repo *adoptionRepository) FindByID(ctx context.Context, id int64) (*entity.Adoption, error) {
	var adoptionM model.AdoptionModel
	if err := repo.db.WithContext(ctx).First(&adoptionM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdoptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find adoption by id")
	}

	return toAdoptionDomain(&adoptionM), nil
}

func (repo *adoptionRepository) ListByAdopter(ctx context.Context, adopterID int64) ([]*entity.Adoption, error) {
	var models []model.AdoptionModel
	if err := repo.db.WithContext(ctx).
		Where("adopter_id = ?", adopterID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list adoptions by adopter")
	}

	adoptions := make([]*entity.Adoption, 0, len(models))
	for i := range models {
		adoptions = append(adoptions, toAdoptionDomain(&models[i]))
	}

	return adoptions, nil
}

func (repo *adoptionRepository) Update(ctx context.Context, adoption *entity.Adoption) error {
	result := repo.db.WithContext(ctx).Model(&model.AdoptionModel{}).
		Where("id = ?", adoption.ID).
		Update("status", string(adoption.Status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update adoption")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdoptionNotFound
	}

	return nil
}

func toAdoptionDomain(m *model.AdoptionModel) *entity.Adoption {
	return &entity.Adoption{
		ID:        m.ID,
		PetID:     m.PetID,
		AdopterID: m.AdopterID,
		Status:    entity.AdoptionStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

func fromAdoptionDomain(a *entity.Adoption) *model.AdoptionModel {
	return &model.AdoptionModel{
		ID:        a.ID,
		PetID:     a.PetID,
		AdopterID: a.AdopterID,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}
