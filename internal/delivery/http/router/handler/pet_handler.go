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

// PetHandler holds dependencies for pet catalog handlers.
type PetHandler struct {
	uc     usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler, injected by Fx.
func NewPetHandler(uc usecase.PetUsecase, logger *slog.Logger) *PetHandler {
	return &PetHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all pets.
func (h *PetHandler) List(c echo.Context) error {
	pets, err := h.uc.ListPets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pets, "")
}

// Get returns one pet by id.
func (h *PetHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	pet, err := h.uc.GetPet(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "")
}

// Create handles the multipart pet creation request. Text fields arrive as
// form values alongside the mandatory image file.
func (h *PetHandler) Create(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	age, _ := strconv.Atoi(c.FormValue("age"))

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrImageMissing
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	pet, err := h.uc.CreatePet(c.Request().Context(), usecase.CreatePetInput{
		Name:        c.FormValue("name"),
		Species:     c.FormValue("species"),
		Breed:       c.FormValue("breed"),
		Age:         age,
		Size:        c.FormValue("size"),
		Description: c.FormValue("description"),
		OwnerID:     userID,
		Image: &usecase.ImageUpload{
			Filename: fileHeader.Filename,
			Content:  file,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pet, "Pet created successfully")
}

// Delete removes a pet. The usecase enforces that only the owner or an
// admin may delete.
func (h *PetHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}
	role, _ := deliverycontext.GetUserRole(c)

	if err := h.uc.DeletePet(c.Request().Context(), id, userID, role); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pet deleted successfully")
}
