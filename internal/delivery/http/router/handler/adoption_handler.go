package handler

import (
	"log/slog"
	"net/http"

	"pawsconnect/internal/delivery/http/response"
	"pawsconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdoptionHandler holds dependencies for adoption request handlers.
type AdoptionHandler struct {
	uc     usecase.AdoptionUsecase
	logger *slog.Logger
}

// NewAdoptionHandler is the constructor for AdoptionHandler, injected by Fx.
func NewAdoptionHandler(uc usecase.AdoptionUsecase, logger *slog.Logger) *AdoptionHandler {
	return &AdoptionHandler{
		uc:     uc,
		logger: logger,
	}
}

// DecideRequest represents the admin's decision on a pending request.
type DecideRequest struct {
	Approve bool `json:"approve"`
}

// Request files an adoption request for the pet in the path.
func (h *AdoptionHandler) Request(c echo.Context) error {
	petID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	adoption, err := h.uc.RequestAdoption(c.Request().Context(), petID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, adoption, "Adoption requested successfully")
}

// ListMine returns the caller's adoption requests.
func (h *AdoptionHandler) ListMine(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	adoptions, err := h.uc.ListMyAdoptions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adoptions, "")
}

// Decide approves or rejects a pending request. Admin only, enforced by the
// route's RequireRole middleware.
func (h *AdoptionHandler) Decide(c echo.Context) error {
	adoptionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req DecideRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	adoption, err := h.uc.DecideAdoption(c.Request().Context(), usecase.DecideAdoptionInput{
		AdoptionID: adoptionID,
		Approve:    req.Approve,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, adoption, "Adoption decided successfully")
}
