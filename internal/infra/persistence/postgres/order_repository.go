package postgres

import (
	"context"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
// Orders are append-only; there is no update or delete path.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create appends a new order snapshot for a profile.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByProfile retrieves every order owned by the given profile, newest first.
func (repo *orderRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders for profile")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, record := range data.Items {
		items = append(items, entity.OrderItem{
			Target: entity.TargetRef{
				Kind: entity.TargetKind(record.TargetKind),
				ID:   record.TargetID,
			},
			Name:      record.Name,
			Quantity:  record.Quantity,
			UnitPrice: record.UnitPrice,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		ProfileID:       data.ProfileID,
		Items:           items,
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		CreatedAt:       data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	records := make([]model.OrderItemRecord, 0, len(data.Items))
	for _, item := range data.Items {
		records = append(records, model.OrderItemRecord{
			TargetKind: string(item.Target.Kind),
			TargetID:   item.Target.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		ProfileID:       data.ProfileID,
		Items:           records,
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		CreatedAt:       data.CreatedAt,
	}
}
