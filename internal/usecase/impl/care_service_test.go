package impl

import (
	"context"
	"testing"
	"time"

	"pawsconnect/internal/domain/entity"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/repository"
	mockRepo "pawsconnect/internal/mocks/repository"
	"pawsconnect/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type careServiceFixtures struct {
	service     usecase.CareUsecase
	serviceRepo *mockRepo.MockCareServiceRepository
	bookingRepo *mockRepo.MockBookingRepository
}

func createTestCareService(t *testing.T) careServiceFixtures {
	t.Helper()

	serviceRepo := new(mockRepo.MockCareServiceRepository)
	bookingRepo := new(mockRepo.MockBookingRepository)

	service := NewCareService(CareServiceParams{
		ServiceRepo: serviceRepo,
		BookingRepo: bookingRepo,
		Logger:      newDiscardLogger(),
	})

	return careServiceFixtures{
		service:     service,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
	}
}

func TestCareService_CreateService_Success(t *testing.T) {
	fx := createTestCareService(t)
	ctx := context.Background()

	fx.serviceRepo.On("Create", ctx, mock.AnythingOfType("*entity.CareService")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.CareService).ID = 1
		}).
		Return(nil)

	svc, err := fx.service.CreateService(ctx, usecase.CreateCareServiceInput{
		Name:            "Full Grooming",
		Price:           49.90,
		DurationMinutes: 60,
		Category:        "Grooming",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), svc.ID)
	// Category input is case-insensitive, stored lowercase.
	assert.Equal(t, entity.CareGrooming, svc.Category)
}

func TestCareService_CreateService_InvalidInput(t *testing.T) {
	fx := createTestCareService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.CreateCareServiceInput
	}{
		{name: "unknown category", input: usecase.CreateCareServiceInput{Name: "X", Category: "walking"}},
		{name: "missing name", input: usecase.CreateCareServiceInput{Category: "grooming"}},
		{name: "negative price", input: usecase.CreateCareServiceInput{Name: "X", Category: "boarding", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.CreateService(ctx, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	fx.serviceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCareService_BookService_Success(t *testing.T) {
	fx := createTestCareService(t)
	ctx := context.Background()
	date := time.Now().Add(48 * time.Hour)

	fx.serviceRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.CareService{ID: 3, Category: entity.CareBoarding}, nil)
	fx.bookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Booking).ID = 12
		}).
		Return(nil)

	booking, err := fx.service.BookService(ctx, usecase.BookServiceInput{
		UserID:      7,
		ServiceID:   3,
		BookingDate: date,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), booking.ID)
	assert.Equal(t, entity.BookingPending, booking.Status)
}

func TestCareService_BookService_UnknownService(t *testing.T) {
	fx := createTestCareService(t)
	ctx := context.Background()

	fx.serviceRepo.On("FindByID", ctx, int64(404)).
		Return(nil, repository.ErrServiceNotFound)

	_, err := fx.service.BookService(ctx, usecase.BookServiceInput{
		UserID:      7,
		ServiceID:   404,
		BookingDate: time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestCareService_BookService_PastDate(t *testing.T) {
	fx := createTestCareService(t)

	_, err := fx.service.BookService(context.Background(), usecase.BookServiceInput{
		UserID:      7,
		ServiceID:   3,
		BookingDate: time.Now().Add(-time.Hour),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCareService_CancelBooking_Ownership(t *testing.T) {
	fx := createTestCareService(t)
	ctx := context.Background()

	fx.bookingRepo.On("FindByID", ctx, int64(12)).
		Return(&entity.Booking{ID: 12, UserID: 7}, nil)
	fx.bookingRepo.On("Delete", ctx, int64(12)).Return(nil)

	t.Run("someone else's booking", func(t *testing.T) {
		err := fx.service.CancelBooking(ctx, 12, 999)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("own booking", func(t *testing.T) {
		err := fx.service.CancelBooking(ctx, 12, 7)
		assert.NoError(t, err)
	})
}
