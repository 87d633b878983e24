package usecase

import (
	"context"

	"pawmart/internal/domain/entity"
)

// OrderItemInput is one purchased position supplied at checkout.
type OrderItemInput struct {
	Target    entity.TargetRef
	Name      string
	Quantity  int
	UnitPrice float64
}

// CreateOrderInput defines the data required to record an order. Items must
// be non-empty, TotalAmount positive and ShippingAddress present.
type CreateOrderInput struct {
	Items           []OrderItemInput
	TotalAmount     float64
	ShippingAddress string
}

// OrderUsecase records immutable order snapshots and lists a profile's own
// history. One subject must never see another subject's orders.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, subjectID string, input *CreateOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, subjectID string) ([]*entity.Order, error)
}
