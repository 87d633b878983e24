package handler

import (
	"log/slog"
	"net/http"

	"pawmart/internal/delivery/http/response"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProduct handles the multipart product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Request must be multipart/form-data")
	}

	var files formFiles
	defer files.Close()

	input := &usecase.CreateProductInput{
		Name:        formString(form, "name"),
		Category:    formString(form, "category"),
		Description: formString(form, "description"),
		Feature:     formString(form, "feature"),
		Benefits:    formString(form, "benefits"),
		Offers:      formString(form, "offers"),
		Sizes:       formString(form, "sizes"),
	}

	for key, dst := range map[string]*float64{
		"shippingCharges": &input.ShippingCharges,
		"height":          &input.Height,
		"weight":          &input.Weight,
		"price":           &input.Price,
		"originalPrice":   &input.OriginalPrice,
		"discount":        &input.Discount,
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

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// GetProduct handles the single product fetch request.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseRecordID(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product fetched successfully")
}

// ListProducts handles the product listing request.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products fetched successfully")
}

// UpdateProduct handles the multipart partial update request. Fields absent
// from the form keep their stored values.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
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

	input := &usecase.UpdateProductInput{
		Name:        optString(form, "name"),
		Category:    optString(form, "category"),
		Description: optString(form, "description"),
		Feature:     optString(form, "feature"),
		Benefits:    optString(form, "benefits"),
		Offers:      optString(form, "offers"),
		Sizes:       optString(form, "sizes"),
	}

	for key, dst := range map[string]**float64{
		"shippingCharges": &input.ShippingCharges,
		"height":          &input.Height,
		"weight":          &input.Weight,
		"price":           &input.Price,
		"originalPrice":   &input.OriginalPrice,
		"discount":        &input.Discount,
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

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles the product deletion request.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseRecordID(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product deleted successfully")
}

// UploadMedia handles the standalone single-file upload request.
func (h *ProductHandler) UploadMedia(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "A 'file' form field is required")
	}

	var files formFiles
	defer files.Close()

	upload, err := files.open(header)
	if err != nil {
		return errors.WithStack(err)
	}

	url, err := h.uc.UploadMedia(c.Request().Context(), upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "File uploaded successfully")
}

// parseRecordID parses a path id, distinguishing a malformed id from a
// missing record.
func parseRecordID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrMalformedID.WrapMessage("invalid record id: " + raw)
	}

	return id, nil
}
