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

// careServiceRepository implements repository.CareServiceRepository using GORM.
type careServiceRepository struct {
	db *gorm.DB
}

// NewCareServiceRepository is the constructor for careServiceRepository.
func NewCareServiceRepository(db *gorm.DB) repository.CareServiceRepository {
	return &careServiceRepository{db: db}
}

func (repo *careServiceRepository) Create(ctx context.Context, svc *entity.CareService) error {
	svcM := fromCareServiceDomain(svc)

	if err := repo.db.WithContext(ctx).Create(svcM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required service information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create care service")
	}

	svc.ID = svcM.ID

	return nil
}

func (repo *careServiceRepository) FindByID(ctx context.Context, id int64) (*entity.CareService, error) {
	var svcM model.CareServiceModel
	if err := repo.db.WithContext(ctx).First(&svcM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find care service by id")
	}

	return toCareServiceDomain(&svcM), nil
}

func (repo *careServiceRepository) List(ctx context.Context) ([]*entity.CareService, error) {
	var models []model.CareServiceModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list care services")
	}

	services := make([]*entity.CareService, 0, len(models))
	for i := range models {
		services = append(services, toCareServiceDomain(&models[i]))
	}

	return services, nil
}

// bookingRepository implements repository.BookingRepository using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or service reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt

	return nil
}

func (repo *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	var bookingM model.BookingModel
	if err := repo.db.WithContext(ctx).First(&bookingM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM), nil
}

func (repo *bookingRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	var models []model.BookingModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by user")
	}

	bookings := make([]*entity.Booking, 0, len(models))
	for i := range models {
		bookings = append(bookings, toBookingDomain(&models[i]))
	}

	return bookings, nil
}

func (repo *bookingRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookingModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

func toCareServiceDomain(m *model.CareServiceModel) *entity.CareService {
	return &entity.CareService{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		DurationMinutes: m.DurationMinutes,
		Category:        entity.CareCategory(m.Category),
	}
}

func fromCareServiceDomain(s *entity.CareService) *model.CareServiceModel {
	return &model.CareServiceModel{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Category:        string(s.Category),
	}
}

func toBookingDomain(m *model.BookingModel) *entity.Booking {
	return &entity.Booking{
		ID:          m.ID,
		UserID:      m.UserID,
		ServiceID:   m.ServiceID,
		BookingDate: m.BookingDate,
		Status:      entity.BookingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

func fromBookingDomain(b *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		ID:          b.ID,
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		BookingDate: b.BookingDate,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}
}
