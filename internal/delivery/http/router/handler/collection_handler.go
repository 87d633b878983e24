package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/delivery/http/response"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// addItemRequest is the JSON body for adding a target to a collection.
// Exactly one of productId/petId must be set.
type addItemRequest struct {
	ProductID string `json:"productId"`
	PetID     string `json:"petId"`
	Quantity  int    `json:"quantity"`
}

// adjustQuantityRequest is the JSON body for a unit-step quantity change.
type adjustQuantityRequest struct {
	ProductID string `json:"productId"`
	PetID     string `json:"petId"`
	Action    int    `json:"action"` // Must be +1 or -1.
}

// removeItemRequest is the JSON body for deleting a target from a collection.
type removeItemRequest struct {
	ProductID string `json:"productId"`
	PetID     string `json:"petId"`
}

// CollectionHandler serves both the cart and the wishlist; the route group
// decides which collection a request addresses.
type CollectionHandler struct {
	uc     usecase.CollectionUsecase
	logger *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler(uc usecase.CollectionUsecase, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddItem returns the handler that adds a target to the given collection.
func (h *CollectionHandler) AddItem(kind entity.CollectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req addItemRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid collection item input")
		}

		target, err := parseTarget(req.ProductID, req.PetID)
		if err != nil {
			return errors.WithStack(err)
		}

		subjectID := deliverycontext.GetSubjectID(c.Request().Context())
		output, err := h.uc.AddItem(c.Request().Context(), subjectID, kind, &usecase.AddItemInput{
			Target:   target,
			Quantity: req.Quantity,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, output, "Item added successfully")
	}
}

// AdjustQuantity returns the handler that applies a +1/-1 quantity change.
func (h *CollectionHandler) AdjustQuantity(kind entity.CollectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req adjustQuantityRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid quantity update input")
		}

		target, err := parseTarget(req.ProductID, req.PetID)
		if err != nil {
			return errors.WithStack(err)
		}

		subjectID := deliverycontext.GetSubjectID(c.Request().Context())
		output, err := h.uc.AdjustQuantity(c.Request().Context(), subjectID, kind, &usecase.AdjustQuantityInput{
			Target: target,
			Delta:  req.Action,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, output, "Quantity updated successfully")
	}
}

// RemoveItem returns the handler that deletes a target from the collection.
func (h *CollectionHandler) RemoveItem(kind entity.CollectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req removeItemRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid item removal input")
		}

		target, err := parseTarget(req.ProductID, req.PetID)
		if err != nil {
			return errors.WithStack(err)
		}

		subjectID := deliverycontext.GetSubjectID(c.Request().Context())
		output, err := h.uc.RemoveItem(c.Request().Context(), subjectID, kind, &usecase.RemoveItemInput{
			Target: target,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, output, "Item removed successfully")
	}
}

// GetCollection returns the handler that materializes the collection against
// the current catalog.
func (h *CollectionHandler) GetCollection(kind entity.CollectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		subjectID := deliverycontext.GetSubjectID(c.Request().Context())
		output, err := h.uc.GetCollection(c.Request().Context(), subjectID, kind)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, output, "Collection fetched successfully")
	}
}

// parseTarget builds a TargetRef from the mutually exclusive productId/petId
// body fields.
func parseTarget(productID, petID string) (entity.TargetRef, error) {
	switch {
	case productID != "" && petID != "":
		return entity.TargetRef{}, domainerrors.ErrValidation.WrapMessage("supply either productId or petId, not both")
	case productID != "":
		id, err := uuid.Parse(productID)
		if err != nil {
			return entity.TargetRef{}, domainerrors.ErrMalformedID.WrapMessage("invalid productId: " + productID)
		}

		return entity.TargetRef{Kind: entity.TargetKindProduct, ID: id}, nil
	case petID != "":
		id, err := uuid.Parse(petID)
		if err != nil {
			return entity.TargetRef{}, domainerrors.ErrMalformedID.WrapMessage("invalid petId: " + petID)
		}

		return entity.TargetRef{Kind: entity.TargetKindPet, ID: id}, nil
	default:
		return entity.TargetRef{}, domainerrors.ErrValidation.WrapMessage("productId or petId is required")
	}
}
