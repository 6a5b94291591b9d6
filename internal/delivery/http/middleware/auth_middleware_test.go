package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "pawsconnect/internal/delivery/context"
	"pawsconnect/internal/domain/entity"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/service"
	mockSvc "pawsconnect/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newTestContext("")
	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	tokenSvc.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	m := NewAuthMiddleware(tokenSvc)

	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer "} {
		c, _ := newTestContext(header)
		err := m.Authenticate(okHandler)(c)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated, header)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("Validate", "bad-token").Return(nil, errors.New("signature invalid"))
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newTestContext("Bearer bad-token")
	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticate_ValidTokenSetsIdentity(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("Validate", "good-token").
		Return(&service.Claims{UserID: 42, Role: entity.RoleBreeder}, nil)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext("Bearer good-token")
	handler := m.Authenticate(func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, int64(42), userID)

		role, ok := deliverycontext.GetUserRole(c)
		require.True(t, ok)
		assert.Equal(t, entity.RoleBreeder, role)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateOptional_MissingHeaderIsAnonymous(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newTestContext("")
	handler := m.AuthenticateOptional(func(c echo.Context) error {
		_, ok := deliverycontext.GetUserID(c)
		assert.False(t, ok)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateOptional_InvalidTokenStillRejected(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	tokenSvc.On("Validate", "bad-token").Return(nil, errors.New("expired"))
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newTestContext("Bearer bad-token")
	err := m.AuthenticateOptional(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestRequireRole(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	m := NewAuthMiddleware(tokenSvc)

	t.Run("matching role passes", func(t *testing.T) {
		c, rec := newTestContext("")
		deliverycontext.SetAuthenticatedUser(c, 1, entity.RoleAdmin)

		err := m.RequireRole("admin")(okHandler)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is rejected", func(t *testing.T) {
		c, _ := newTestContext("")
		deliverycontext.SetAuthenticatedUser(c, 1, entity.RoleAdopter)

		err := m.RequireRole("admin")(okHandler)(c)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("no identity is rejected", func(t *testing.T) {
		c, _ := newTestContext("")

		err := m.RequireRole("admin")(okHandler)(c)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
