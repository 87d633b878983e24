package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Orders are immutable
// snapshots: once recorded they are never updated or deleted.
type orderService struct {
	profileRepo repository.ProfileRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		profileRepo: params.ProfileRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder records a checkout snapshot for the subject's own profile.
func (srv *orderService) CreateOrder(ctx context.Context, subjectID string, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, entity.OrderItem{
			Target:    item.Target,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order := &entity.Order{
		ProfileID:       profile.ID,
		Items:           items,
		TotalAmount:     input.TotalAmount,
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to record order", slog.Any("profileID", profile.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to record order")
	}

	srv.log(ctx).Info("Order recorded",
		slog.Any("orderID", order.ID),
		slog.Any("profileID", profile.ID),
		slog.Float64("totalAmount", order.TotalAmount))

	return order, nil
}

// ListOrders returns the subject's own order history, newest first.
func (srv *orderService) ListOrders(ctx context.Context, subjectID string) ([]*entity.Order, error) {
	profile, err := srv.profileRepo.FindBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	orders, err := srv.orderRepo.FindByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func validateOrderInput(input *usecase.CreateOrderInput) error {
	if len(input.Items) == 0 {
		return errors.Wrap(domainerrors.ErrValidation, "order must contain at least one item")
	}

	for _, item := range input.Items {
		if !item.Target.Kind.IsValid() {
			return errors.Wrap(domainerrors.ErrValidation, "order item target kind must be product or pet")
		}
		if item.Quantity < 1 {
			return errors.Wrap(domainerrors.ErrValidation, "order item quantity must be at least one")
		}
		if item.UnitPrice < 0 {
			return errors.Wrap(domainerrors.ErrValidation, "order item price must not be negative")
		}
	}

	if input.TotalAmount <= 0 {
		return errors.Wrap(domainerrors.ErrValidation, "order total must be positive")
	}
	if strings.TrimSpace(input.ShippingAddress) == "" {
		return errors.Wrap(domainerrors.ErrValidation, "shipping address is required")
	}

	return nil
}
