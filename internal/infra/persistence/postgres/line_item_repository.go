package postgres

import (
	"context"

	"pawmart/internal/domain/cart"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// lineItemRepository implements the repository.LineItemRepository interface.
// Mutations assume the caller already holds the profile row lock inside the
// surrounding transaction.
type lineItemRepository struct {
	db *gorm.DB
}

// NewLineItemRepository is the constructor for lineItemRepository.
func NewLineItemRepository(db *gorm.DB) repository.LineItemRepository {
	return &lineItemRepository{
		db: db,
	}
}

// ListCollection loads one collection in insertion order.
func (repo *lineItemRepository) ListCollection(ctx context.Context, profileID uuid.UUID, kind entity.CollectionKind) (cart.Collection, error) {
	var itemModels []*model.LineItemModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND collection = ?", profileID, kind.String()).
		Order("position ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list collection")
	}

	items := make(cart.Collection, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, entity.LineItem{
			Target: entity.TargetRef{
				Kind: entity.TargetKind(itemM.TargetKind),
				ID:   itemM.TargetID,
			},
			Quantity: itemM.Quantity,
		})
	}

	return items, nil
}

// ReplaceCollection overwrites one collection with the given state. A delete
// and re-insert keeps positions dense and matches the engine's whole-state
// output; the profile lock makes the two steps atomic for readers that
// mutate.
func (repo *lineItemRepository) ReplaceCollection(ctx context.Context, profileID uuid.UUID, kind entity.CollectionKind, items cart.Collection) error {
	if err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND collection = ?", profileID, kind.String()).
		Delete(&model.LineItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear collection")
	}

	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.LineItemModel, 0, len(items))
	for i, item := range items {
		itemModels = append(itemModels, &model.LineItemModel{
			ProfileID:  profileID,
			Collection: kind.String(),
			TargetKind: item.Target.Kind.String(),
			TargetID:   item.Target.ID,
			Quantity:   item.Quantity,
			Position:   i,
		})
	}

	if err := repo.db.WithContext(ctx).Create(itemModels).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("collection entry quantity out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to persist collection")
	}

	return nil
}
