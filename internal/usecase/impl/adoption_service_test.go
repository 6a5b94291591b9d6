package impl

import (
	"context"
	"testing"

	"pawsconnect/internal/domain/entity"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/repository"
	mockRepo "pawsconnect/internal/mocks/repository"
	"pawsconnect/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adoptionServiceFixtures struct {
	service          usecase.AdoptionUsecase
	petRepo          *mockRepo.MockPetRepository
	adoptionRepo     *mockRepo.MockAdoptionRepository
	txPetRepo        *mockRepo.MockPetRepository
	txAdoptionRepo   *mockRepo.MockAdoptionRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestAdoptionService(t *testing.T) adoptionServiceFixtures {
	t.Helper()

	petRepo := new(mockRepo.MockPetRepository)
	adoptionRepo := new(mockRepo.MockAdoptionRepository)
	txPetRepo := new(mockRepo.MockPetRepository)
	txAdoptionRepo := new(mockRepo.MockAdoptionRepository)
	notificationRepo := new(mockRepo.MockNotificationRepository)

	factory := new(mockRepo.MockRepositoryFactory)
	factory.On("PetRepo").Return(txPetRepo).Maybe()
	factory.On("AdoptionRepo").Return(txAdoptionRepo).Maybe()
	factory.On("NotificationRepo").Return(notificationRepo).Maybe()

	service := NewAdoptionService(AdoptionServiceParams{
		TxManager:    &mockRepo.FakeTransactionManager{Factory: factory},
		PetRepo:      petRepo,
		AdoptionRepo: adoptionRepo,
		Logger:       newDiscardLogger(),
	})

	return adoptionServiceFixtures{
		service:          service,
		petRepo:          petRepo,
		adoptionRepo:     adoptionRepo,
		txPetRepo:        txPetRepo,
		txAdoptionRepo:   txAdoptionRepo,
		notificationRepo: notificationRepo,
	}
}

func TestAdoptionService_RequestAdoption_Success(t *testing.T) {
	fx := createTestAdoptionService(t)
	ctx := context.Background()

	fx.petRepo.On("FindByID", ctx, int64(2)).
		Return(&entity.Pet{ID: 2, AvailableForAdoption: true}, nil)
	fx.adoptionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Adoption")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Adoption).ID = 10
		}).
		Return(nil)

	adoption, err := fx.service.RequestAdoption(ctx, 2, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(10), adoption.ID)
	assert.Equal(t, int64(2), adoption.PetID)
	assert.Equal(t, int64(7), adoption.AdopterID)
	assert.Equal(t, entity.AdoptionPending, adoption.Status)
}

func TestAdoptionService_RequestAdoption_PetUnavailable(t *testing.T) {
	fx := createTestAdoptionService(t)
	ctx := context.Background()

	fx.petRepo.On("FindByID", ctx, int64(2)).
		Return(&entity.Pet{ID: 2, AvailableForAdoption: false}, nil)

	_, err := fx.service.RequestAdoption(ctx, 2, 7)
	assert.ErrorIs(t, err, domainerrors.ErrPetUnavailable)

	fx.adoptionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdoptionService_RequestAdoption_PetNotFound(t *testing.T) {
	fx := createTestAdoptionService(t)
	ctx := context.Background()

	fx.petRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrPetNotFound)

	_, err := fx.service.RequestAdoption(ctx, 404, 7)
	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}

func TestAdoptionService_DecideAdoption_Approve(t *testing.T) {
	fx := createTestAdoptionService(t)
	ctx := context.Background()

	adoption := &entity.Adoption{ID: 10, PetID: 2, AdopterID: 7, Status: entity.AdoptionPending}
	pet := &entity.Pet{ID: 2, Name: "Rex", AvailableForAdoption: true}

	fx.txAdoptionRepo.On("FindByID", ctx, int64(10)).Return(adoption, nil)
	fx.txPetRepo.On("FindByID", ctx, int64(2)).Return(pet, nil)
	fx.txAdoptionRepo.On("Update", ctx, mock.AnythingOfType("*entity.Adoption")).Return(nil)
	fx.txPetRepo.On("Update", ctx, mock.MatchedBy(func(p *entity.Pet) bool {
		return p.ID == 2 && !p.AvailableForAdoption
	})).Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == 7 && n.Message != ""
	})).Return(nil)

	decided, err := fx.service.DecideAdoption(ctx, usecase.DecideAdoptionInput{
		AdoptionID: 10,
		Approve:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AdoptionApproved, decided.Status)
	fx.txPetRepo.AssertExpectations(t)
	fx.notificationRepo.AssertExpectations(t)
}

func TestAdoptionService_DecideAdoption_Reject(t *testing.T) {
	fx := createTestAdoptionService(t)
	ctx := context.Background()

	adoption := &entity.Adoption{ID: 10, PetID: 2, AdopterID: 7, Status: entity.AdoptionPending}
	pet := &entity.Pet{ID: 2, Name: "Rex", AvailableForAdoption: true}

	fx.txAdoptionRepo.On("FindByID", ctx, int64(10)).Return(adoption, nil)
	fx.txPetRepo.On("FindByID", ctx, int64(2)).Return(pet, nil)
	fx.txAdoptionRepo.On("Update", ctx, mock.AnythingOfType("*entity.Adoption")).Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)

	decided, err := fx.service.DecideAdoption(ctx, usecase.DecideAdoptionInput{
		AdoptionID: 10,
		Approve:    false,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.AdoptionRejected, decided.Status)
	// Rejection leaves the pet available.
	fx.txPetRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdoptionService_DecideAdoption_AlreadyDecided(t *testing.T) {
	fx := createTestAdoptionService(t)
	ctx := context.Background()

	adoption := &entity.Adoption{ID: 10, PetID: 2, Status: entity.AdoptionApproved}
	fx.txAdoptionRepo.On("FindByID", ctx, int64(10)).Return(adoption, nil)

	_, err := fx.service.DecideAdoption(ctx, usecase.DecideAdoptionInput{
		AdoptionID: 10,
		Approve:    false,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAdoptionDecided)

	fx.txAdoptionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.notificationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdoptionService_DecideAdoption_NotificationFailureRollsBack(t *testing.T) {
	fx := createTestAdoptionService(t)
	ctx := context.Background()

	adoption := &entity.Adoption{ID: 10, PetID: 2, AdopterID: 7, Status: entity.AdoptionPending}
	pet := &entity.Pet{ID: 2, Name: "Rex", AvailableForAdoption: true}

	fx.txAdoptionRepo.On("FindByID", ctx, int64(10)).Return(adoption, nil)
	fx.txPetRepo.On("FindByID", ctx, int64(2)).Return(pet, nil)
	fx.txAdoptionRepo.On("Update", ctx, mock.AnythingOfType("*entity.Adoption")).Return(nil)
	fx.txPetRepo.On("Update", ctx, mock.AnythingOfType("*entity.Pet")).Return(nil)
	fx.notificationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Notification")).
		Return(assert.AnError)

	_, err := fx.service.DecideAdoption(ctx, usecase.DecideAdoptionInput{
		AdoptionID: 10,
		Approve:    true,
	})
	assert.Error(t, err)
}
