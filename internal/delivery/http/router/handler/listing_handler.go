package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "pawsconnect/internal/delivery/context"
	"pawsconnect/internal/delivery/http/response"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for marketplace listing handlers.
type ListingHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all listings. Public.
func (h *ListingHandler) List(c echo.Context) error {
	listings, err := h.uc.ListListings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

// Get returns one listing by id.
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.uc.GetListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// Create handles the multipart listing creation request.
func (h *ListingHandler) Create(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrImageMissing
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	listing, err := h.uc.CreateListing(c.Request().Context(), usecase.CreateListingInput{
		SellerID:    userID,
		Title:       c.FormValue("title"),
		Species:     c.FormValue("species"),
		Breed:       c.FormValue("breed"),
		Price:       price,
		Description: c.FormValue("description"),
		Image: &usecase.ImageUpload{
			Filename: fileHeader.Filename,
			Content:  file,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created successfully")
}

// Delete removes a listing. The usecase enforces that only the seller or an
// admin may delete.
func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}
	role, _ := deliverycontext.GetUserRole(c)

	if err := h.uc.DeleteListing(c.Request().Context(), id, userID, role); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing deleted successfully")
}
