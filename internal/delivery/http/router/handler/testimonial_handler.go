package handler

import (
	"log/slog"
	"net/http"

	"pawmart/internal/delivery/http/response"
	"pawmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestimonialHandler holds dependencies for testimonial handlers.
type TestimonialHandler struct {
	uc     usecase.TestimonialUsecase
	logger *slog.Logger
}

// NewTestimonialHandler is the constructor for TestimonialHandler, injected by Fx.
func NewTestimonialHandler(uc usecase.TestimonialUsecase, logger *slog.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateTestimonial handles the multipart testimonial creation request. The
// image is optional.
func (h *TestimonialHandler) CreateTestimonial(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Request must be multipart/form-data")
	}

	var files formFiles
	defer files.Close()

	input := &usecase.CreateTestimonialInput{
		Name:    formString(form, "name"),
		Content: formString(form, "content"),
		Author:  formString(form, "author"),
		Rating:  formString(form, "rating"),
	}

	if input.Image, err = files.openFirst(form, "image"); err != nil {
		return errors.WithStack(err)
	}

	testimonial, err := h.uc.CreateTestimonial(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, testimonial, "Testimonial created successfully")
}

// GetTestimonial handles the single testimonial fetch request.
func (h *TestimonialHandler) GetTestimonial(c echo.Context) error {
	id, err := parseRecordID(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	testimonial, err := h.uc.GetTestimonial(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonial, "Testimonial fetched successfully")
}

// ListTestimonials handles the testimonial listing request.
func (h *TestimonialHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.uc.ListTestimonials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonials, "Testimonials fetched successfully")
}

// UpdateTestimonial handles the multipart partial update request.
func (h *TestimonialHandler) UpdateTestimonial(c echo.Context) error {
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

	input := &usecase.UpdateTestimonialInput{
		Name:    optString(form, "name"),
		Content: optString(form, "content"),
		Author:  optString(form, "author"),
		Rating:  optString(form, "rating"),
	}

	if input.Image, err = files.openFirst(form, "image"); err != nil {
		return errors.WithStack(err)
	}

	testimonial, err := h.uc.UpdateTestimonial(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonial, "Testimonial updated successfully")
}

// DeleteTestimonial handles the testimonial deletion request.
func (h *TestimonialHandler) DeleteTestimonial(c echo.Context) error {
	id, err := parseRecordID(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	testimonial, err := h.uc.DeleteTestimonial(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonial, "Testimonial deleted successfully")
}
