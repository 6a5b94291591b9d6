package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawsconnect/internal/delivery/http/response"
	domainerrors "pawsconnect/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(newDiscardLogger())
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec, body := runErrorHandler(t, domainerrors.ErrEmailTaken)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "EMAIL_TAKEN", body.Error.Code)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrPetNotFound, "loading pet")
	rec, body := runErrorHandler(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PET_NOT_FOUND", body.Error.Code)
}

func TestHandleHTTPError_UniformUnauthorized(t *testing.T) {
	// Missing, invalid and expired tokens all surface the same error value,
	// so their response bodies are identical.
	recA, bodyA := runErrorHandler(t, domainerrors.ErrUnauthenticated)
	recB, bodyB := runErrorHandler(t, errors.Wrap(domainerrors.ErrUnauthenticated, "expired"))

	assert.Equal(t, http.StatusUnauthorized, recA.Code)
	assert.Equal(t, recA.Code, recB.Code)
	assert.Equal(t, bodyA, bodyB)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, body := runErrorHandler(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestHandleHTTPError_UnknownErrorHidesDetails(t *testing.T) {
	rec, body := runErrorHandler(t, errors.New("connection refused to db-master:5432"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Message, "db-master")
	assert.NotContains(t, body.Error.Details, "db-master")
}
