// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	deliverycontext "pawsconnect/internal/delivery/context"
	"pawsconnect/internal/delivery/http/response"
	domainerrors "pawsconnect/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}

// pathID parses a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name + " parameter")
	}

	return id, nil
}

// authenticatedUserID returns the subject id set by the auth middleware.
// Routes behind Authenticate always have one; its absence is a wiring bug.
func authenticatedUserID(c echo.Context) (int64, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, domainerrors.ErrUnauthenticated
	}

	return userID, nil
}
