// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pawmart/internal/domain/cart"
	"pawmart/internal/domain/entity"
)

// --- Input DTOs ---

// AddItemInput defines the data required to add a target to a collection.
type AddItemInput struct {
	Target   entity.TargetRef
	Quantity int // Defaults to 1 when the caller supplies nothing.
}

// AdjustQuantityInput defines a unit-step quantity change for one target.
type AdjustQuantityInput struct {
	Target entity.TargetRef
	Delta  int // Must be +1 or -1.
}

// RemoveItemInput identifies the target to delete from a collection.
type RemoveItemInput struct {
	Target entity.TargetRef
}

// --- Output DTOs ---

// CollectionOutput returns the raw persisted collection after a mutation.
type CollectionOutput struct {
	Kind  entity.CollectionKind
	Items cart.Collection
}

// MaterializedCollectionOutput returns the display view of a collection with
// every entry resolved against the current catalog.
type MaterializedCollectionOutput struct {
	Kind  entity.CollectionKind
	Items []cart.MaterializedItem
}

// CollectionUsecase drives the cart/wishlist engine for both collections a
// profile owns. The delivery layer picks the collection via kind; the rules
// are identical for cart and wishlist.
type CollectionUsecase interface {
	AddItem(ctx context.Context, subjectID string, kind entity.CollectionKind, input *AddItemInput) (*CollectionOutput, error)
	AdjustQuantity(ctx context.Context, subjectID string, kind entity.CollectionKind, input *AdjustQuantityInput) (*CollectionOutput, error)
	RemoveItem(ctx context.Context, subjectID string, kind entity.CollectionKind, input *RemoveItemInput) (*CollectionOutput, error)
	GetCollection(ctx context.Context, subjectID string, kind entity.CollectionKind) (*MaterializedCollectionOutput, error)
}
