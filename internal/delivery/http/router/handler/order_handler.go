package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/delivery/http/response"
	"pawmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// orderItemRequest is one purchased position in the checkout body.
type orderItemRequest struct {
	ProductID string  `json:"productId"`
	PetID     string  `json:"petId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// createOrderRequest is the JSON body for recording an order snapshot.
type createOrderRequest struct {
	Items           []orderItemRequest `json:"items"`
	TotalAmount     float64            `json:"totalAmount"`
	ShippingAddress string             `json:"shippingAddress"`
}

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateOrder handles the checkout request.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	input := &usecase.CreateOrderInput{
		TotalAmount:     req.TotalAmount,
		ShippingAddress: req.ShippingAddress,
		Items:           make([]usecase.OrderItemInput, 0, len(req.Items)),
	}

	for _, item := range req.Items {
		target, err := parseTarget(item.ProductID, item.PetID)
		if err != nil {
			return errors.WithStack(err)
		}

		input.Items = append(input.Items, usecase.OrderItemInput{
			Target:    target,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	subjectID := deliverycontext.GetSubjectID(c.Request().Context())
	order, err := h.uc.CreateOrder(c.Request().Context(), subjectID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListOrders handles the order history request for the calling subject.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	subjectID := deliverycontext.GetSubjectID(c.Request().Context())
	orders, err := h.uc.ListOrders(c.Request().Context(), subjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders fetched successfully")
}
