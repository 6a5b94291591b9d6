// Package repository provides testify mocks for the repository interfaces.
package repository

import (
	"context"

	"pawsconnect/internal/domain/entity"
	"pawsconnect/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockPetRepository mocks repository.PetRepository.
type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(ctx context.Context, pet *entity.Pet) error {
	args := m.Called(ctx, pet)

	return args.Error(0)
}

func (m *MockPetRepository) FindByID(ctx context.Context, id int64) (*entity.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Pet), args.Error(1)
}

func (m *MockPetRepository) List(ctx context.Context) ([]*entity.Pet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Pet), args.Error(1)
}

func (m *MockPetRepository) Update(ctx context.Context, pet *entity.Pet) error {
	args := m.Called(ctx, pet)

	return args.Error(0)
}

func (m *MockPetRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockAdoptionRepository mocks repository.AdoptionRepository.
type MockAdoptionRepository struct {
	mock.Mock
}

func (m *MockAdoptionRepository) Create(ctx context.Context, adoption *entity.Adoption) error {
	args := m.Called(ctx, adoption)

	return args.Error(0)
}

func (m *MockAdoptionRepository) FindByID(ctx context.Context, id int64) (*entity.Adoption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Adoption), args.Error(1)
}

func (m *MockAdoptionRepository) ListByAdopter(ctx context.Context, adopterID int64) ([]*entity.Adoption, error) {
	args := m.Called(ctx, adopterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Adoption), args.Error(1)
}

func (m *MockAdoptionRepository) Update(ctx context.Context, adoption *entity.Adoption) error {
	args := m.Called(ctx, adoption)

	return args.Error(0)
}

// MockCareServiceRepository mocks repository.CareServiceRepository.
type MockCareServiceRepository struct {
	mock.Mock
}

func (m *MockCareServiceRepository) Create(ctx context.Context, svc *entity.CareService) error {
	args := m.Called(ctx, svc)

	return args.Error(0)
}

func (m *MockCareServiceRepository) FindByID(ctx context.Context, id int64) (*entity.CareService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CareService), args.Error(1)
}

func (m *MockCareServiceRepository) List(ctx context.Context) ([]*entity.CareService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CareService), args.Error(1)
}

// MockBookingRepository mocks repository.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)

	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockListingRepository mocks repository.ListingRepository.
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	args := m.Called(ctx, listing)

	return args.Error(0)
}

func (m *MockListingRepository) FindByID(ctx context.Context, id int64) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *MockListingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Listing), args.Error(1)
}

func (m *MockListingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockNotificationRepository mocks repository.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	args := m.Called(ctx, notification)

	return args.Error(0)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id int64) (*entity.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	return args.Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) PetRepo() repository.PetRepository {
	args := m.Called()

	return args.Get(0).(repository.PetRepository)
}

func (m *MockRepositoryFactory) AdoptionRepo() repository.AdoptionRepository {
	args := m.Called()

	return args.Get(0).(repository.AdoptionRepository)
}

func (m *MockRepositoryFactory) NotificationRepo() repository.NotificationRepository {
	args := m.Called()

	return args.Get(0).(repository.NotificationRepository)
}

// FakeTransactionManager runs the unit of work against the configured
// factory and returns its error, mirroring a real commit/rollback without a
// database. Setting BeginErr simulates a transaction that fails to start.
type FakeTransactionManager struct {
	Factory  repository.RepositoryFactory
	BeginErr error
}

func (m *FakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}

	return fn(m.Factory)
}
