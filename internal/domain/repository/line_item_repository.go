package repository

import (
	"context"

	"pawmart/internal/domain/cart"
	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// LineItemRepository persists the line-item collections owned by a profile.
// Mutations are expected to run inside a transaction that already holds the
// profile lock (see ProfileRepository.AcquireLock).
type LineItemRepository interface {
	// ListCollection loads one collection in insertion order.
	ListCollection(ctx context.Context, profileID uuid.UUID, kind entity.CollectionKind) (cart.Collection, error)

	// ReplaceCollection overwrites one collection with the given state,
	// preserving the collection's ordering.
	ReplaceCollection(ctx context.Context, profileID uuid.UUID, kind entity.CollectionKind, items cart.Collection) error
}
