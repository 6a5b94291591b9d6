package impl

import (
	"context"
	"testing"

	"pawsconnect/internal/domain/entity"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/repository"
	mockRepo "pawsconnect/internal/mocks/repository"
	mockSvc "pawsconnect/internal/mocks/service"
	"pawsconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	txUserRepo   *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := new(mockRepo.MockUserRepository)
	txUserRepo := new(mockRepo.MockUserRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	tokenService := new(mockSvc.MockTokenService)

	factory := new(mockRepo.MockRepositoryFactory)
	factory.On("UserRepo").Return(txUserRepo).Maybe()

	service := NewUserService(UserServiceParams{
		TxManager:    &mockRepo.FakeTransactionManager{Factory: factory},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		txUserRepo:   txUserRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "Password123!").Return("hashed_password", nil)
	fx.txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = 1
		}).
		Return(nil)

	view, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), view.ID)
	assert.Equal(t, "Test User", view.Name)
	assert.Equal(t, "test@example.com", view.Email)
	// Unknown or empty role falls back to adopter.
	assert.Equal(t, entity.RoleAdopter, view.Role)

	fx.txUserRepo.AssertExpectations(t)
}

func TestUserService_Register_RoleFromInput(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "Password123!").Return("hashed_password", nil)
	fx.txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 2
		}).
		Return(nil)

	view, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Breeder",
		Email:    "breeder@example.com",
		Password: "Password123!",
		Role:     "breeder",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBreeder, view.Role)
}

func TestUserService_Register_MissingFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{name: "missing name", input: usecase.RegisterInput{Email: "a@b.c", Password: "pw"}},
		{name: "missing email", input: usecase.RegisterInput{Name: "A", Password: "pw"}},
		{name: "missing password", input: usecase.RegisterInput{Name: "A", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Register(ctx, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	fx.txUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "Password123!").Return("hashed_password", nil)
	fx.txUserRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailTaken.WrapMessage("duplicate email"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           9,
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleAdopter,
	}

	fx.userRepo.On("FindByEmail", ctx, "test@example.com").Return(user, nil)
	fx.hasher.On("Check", "Password123!", "hashed_password").Return(true)
	fx.tokenService.On("Issue", int64(9), entity.RoleAdopter).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, int64(9), output.User.ID)
}

func TestUserService_Login_UniformUnauthorized(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           9,
		Email:        "known@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.On("FindByEmail", ctx, "unknown@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByEmail", ctx, "known@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed_password").Return(false)

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "unknown@example.com",
		Password: "whatever",
	})
	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "known@example.com",
		Password: "wrong",
	})

	// Unknown email and wrong password are indistinguishable.
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, errors.Cause(unknownErr), errors.Cause(wrongErr))

	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestUserService_AuthStatus(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	t.Run("anonymous", func(t *testing.T) {
		status, err := fx.service.AuthStatus(ctx, 0)
		require.NoError(t, err)
		assert.False(t, status.LoggedIn)
		assert.Nil(t, status.User)
	})

	t.Run("authenticated", func(t *testing.T) {
		fx.userRepo.On("FindByID", ctx, int64(4)).
			Return(&entity.User{ID: 4, Email: "a@b.c", Role: entity.RoleAdopter}, nil)

		status, err := fx.service.AuthStatus(ctx, 4)
		require.NoError(t, err)
		assert.True(t, status.LoggedIn)
		require.NotNil(t, status.User)
		assert.Equal(t, int64(4), status.User.ID)
	})

	t.Run("deleted account", func(t *testing.T) {
		fx.userRepo.On("FindByID", ctx, int64(5)).
			Return(nil, repository.ErrUserNotFound)

		status, err := fx.service.AuthStatus(ctx, 5)
		require.NoError(t, err)
		assert.False(t, status.LoggedIn)
	})
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("Delete", ctx, int64(404)).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
