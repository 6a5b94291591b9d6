package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pawsconnect/internal/delivery/http/response"
	"pawsconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CareHandler holds dependencies for care service and booking handlers.
type CareHandler struct {
	uc     usecase.CareUsecase
	logger *slog.Logger
}

// NewCareHandler is the constructor for CareHandler, injected by Fx.
func NewCareHandler(uc usecase.CareUsecase, logger *slog.Logger) *CareHandler {
	return &CareHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateServiceRequest represents the request body for a new catalog entry.
type CreateServiceRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=0"`
	Category        string  `json:"category" validate:"required"`
}

// BookServiceRequest represents the request body for a booking.
type BookServiceRequest struct {
	ServiceID   int64     `json:"service_id" validate:"required,gt=0"`
	BookingDate time.Time `json:"booking_date" validate:"required"`
}

// ListServices returns the whole catalog. Public.
func (h *CareHandler) ListServices(c echo.Context) error {
	services, err := h.uc.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "")
}

// GetService returns one catalog entry.
func (h *CareHandler) GetService(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	svc, err := h.uc.GetService(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "")
}

// CreateService adds a catalog entry. Admin only, enforced by the route.
func (h *CareHandler) CreateService(c echo.Context) error {
	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.uc.CreateService(c.Request().Context(), usecase.CreateCareServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, svc, "Service created successfully")
}

// Book reserves a care service for the caller.
func (h *CareHandler) Book(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req BookServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.uc.BookService(c.Request().Context(), usecase.BookServiceInput{
		UserID:      userID,
		ServiceID:   req.ServiceID,
		BookingDate: req.BookingDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, booking, "Booking created successfully")
}

// ListMyBookings returns the caller's bookings.
func (h *CareHandler) ListMyBookings(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	bookings, err := h.uc.ListMyBookings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookings, "")
}

// CancelBooking cancels one of the caller's bookings.
func (h *CareHandler) CancelBooking(c echo.Context) error {
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.CancelBooking(c.Request().Context(), bookingID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Booking canceled successfully")
}
