package handler

import (
	"log/slog"
	"net/http"

	"pawmart/internal/delivery/http/response"
	"pawmart/internal/usecase"

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

// CreatePet handles the multipart pet creation request.
func (h *PetHandler) CreatePet(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Request must be multipart/form-data")
	}

	var files formFiles
	defer files.Close()

	input := &usecase.CreatePetInput{
		Breed:           formString(form, "breed"),
		Category:        formString(form, "category"),
		Description:     formString(form, "description"),
		Color:           formString(form, "color"),
		BodyType:        formString(form, "bodyType"),
		Height:          formString(form, "height"),
		Weight:          formString(form, "weight"),
		DistinctFeature: formString(form, "distinctFeature"),
		Vaccinations:    formString(form, "vaccinations"),
		Temperament:     formString(form, "temperament"),
		Food:            formString(form, "food"),
		FunFact:         formString(form, "funFact"),
		Toys:            formString(form, "toys"),
		Gender:          formString(form, "gender"),
		Offers:          formString(form, "offers"),
		Sizes:           formString(form, "sizes"),
	}

	for key, dst := range map[string]*float64{
		"price":         &input.Price,
		"originalPrice": &input.OriginalPrice,
		"discount":      &input.Discount,
	} {
		val, err := formFloat(form, key)
		if err != nil {
			return errors.WithStack(err)
		}
		*dst = val
	}

	if input.Image, err = files.openFirst(form, "image"); err != nil {
		return errors.WithStack(err)
	}
	if input.Images, err = files.openAll(form, "images"); err != nil {
		return errors.WithStack(err)
	}
	if input.Videos, err = files.openAll(form, "videos"); err != nil {
		return errors.WithStack(err)
	}

	pet, err := h.uc.CreatePet(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pet, "Pet created successfully")
}

// GetPet handles the single pet fetch request.
func (h *PetHandler) GetPet(c echo.Context) error {
	id, err := parseRecordID(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	pet, err := h.uc.GetPet(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet fetched successfully")
}

// ListPets handles the pet listing request.
func (h *PetHandler) ListPets(c echo.Context) error {
	pets, err := h.uc.ListPets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pets, "Pets fetched successfully")
}

// UpdatePet handles the multipart partial update request.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	id, err := parseRecordID(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Request must be multipart/form-data")
	}

	var files formFiles
	defer files.Close()

	input := &usecase.UpdatePetInput{
		Breed:           optString(form, "breed"),
		Category:        optString(form, "category"),
		Description:     optString(form, "description"),
		Color:           optString(form, "color"),
		BodyType:        optString(form, "bodyType"),
		Height:          optString(form, "height"),
		Weight:          optString(form, "weight"),
		DistinctFeature: optString(form, "distinctFeature"),
		Vaccinations:    optString(form, "vaccinations"),
		Temperament:     optString(form, "temperament"),
		Food:            optString(form, "food"),
		FunFact:         optString(form, "funFact"),
		Toys:            optString(form, "toys"),
		Gender:          optString(form, "gender"),
		Offers:          optString(form, "offers"),
		Sizes:           optString(form, "sizes"),
	}

	for key, dst := range map[string]**float64{
		"price":         &input.Price,
		"originalPrice": &input.OriginalPrice,
		"discount":      &input.Discount,
	} {
		val, err := optFloat(form, key)
		if err != nil {
			return errors.WithStack(err)
		}
		*dst = val
	}

	if input.Image, err = files.openFirst(form, "image"); err != nil {
		return errors.WithStack(err)
	}
	if input.Images, err = files.openAll(form, "images"); err != nil {
		return errors.WithStack(err)
	}
	if input.Videos, err = files.openAll(form, "videos"); err != nil {
		return errors.WithStack(err)
	}

	pet, err := h.uc.UpdatePet(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet updated successfully")
}

// DeletePet handles the pet deletion request.
func (h *PetHandler) DeletePet(c echo.Context) error {
	id, err := parseRecordID(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	pet, err := h.uc.DeletePet(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet deleted successfully")
}
