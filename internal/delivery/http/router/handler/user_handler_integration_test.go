package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pawsconnect/config"
	"pawsconnect/internal/delivery/http/middleware"
	"pawsconnect/internal/delivery/http/validator"
	"pawsconnect/internal/domain/entity"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/repository"
	"pawsconnect/internal/infra/auth"
	mockRepo "pawsconnect/internal/mocks/repository"
	"pawsconnect/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUserRepo is a minimal in-memory UserRepository so the full HTTP flow
// can run without a database.
type memoryUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[int64]*entity.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
	}

	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored

	return nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			found := *user

			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *user

	return &found, nil
}

func (r *memoryUserRepo) List(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		found := *user
		users = append(users, &found)
	}

	return users, nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

// newAuthTestServer wires the real hasher, token service, and user usecase
// behind an echo instance configured like the production server.
func newAuthTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "integration-test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost, TokenTTL: time.Minute}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	users := newMemoryUserRepo()
	factory := new(mockRepo.MockRepositoryFactory)
	factory.On("UserRepo").Return(users).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := impl.NewUserService(impl.UserServiceParams{
		TxManager:    &mockRepo.FakeTransactionManager{Factory: factory},
		UserRepo:     users,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewUserHandler(uc, logger)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUserHandler_RegisterAndLogin_Integration(t *testing.T) {
	e := newAuthTestServer(t)

	rec := postJSON(e, "/auth/register",
		`{"name":"Dana","email":"dana@example.com","password":"sup3rsecret","role":"breeder"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered struct {
		Data struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.NotZero(t, registered.Data.ID)
	assert.Equal(t, "dana@example.com", registered.Data.Email)
	assert.Equal(t, "breeder", registered.Data.Role)

	// The projection must never expose the credential, in any form.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "sup3rsecret")

	rec = postJSON(e, "/auth/login",
		`{"email":"dana@example.com","password":"sup3rsecret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var loggedIn struct {
		Data struct {
			AccessToken string `json:"access_token"`
			User        struct {
				ID int64 `json:"id"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))
	assert.NotEmpty(t, loggedIn.Data.AccessToken)
	assert.Equal(t, registered.Data.ID, loggedIn.Data.User.ID)
}

func TestUserHandler_Login_UniformUnauthorized_Integration(t *testing.T) {
	e := newAuthTestServer(t)

	rec := postJSON(e, "/auth/register",
		`{"name":"Dana","email":"dana@example.com","password":"sup3rsecret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPassword := postJSON(e, "/auth/login",
		`{"email":"dana@example.com","password":"wrong-password"}`)
	unknownEmail := postJSON(e, "/auth/login",
		`{"email":"nobody@example.com","password":"sup3rsecret"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

	// Identical bodies: the response must not reveal whether the email exists.
	assert.JSONEq(t, unknownEmail.Body.String(), wrongPassword.Body.String())
}
