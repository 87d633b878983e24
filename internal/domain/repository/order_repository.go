package repository

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines the operations for order persistence. Orders are
// immutable snapshots: there is deliberately no update or delete.
type OrderRepository interface {
	// Create appends a new order snapshot for a profile.
	Create(ctx context.Context, order *entity.Order) error

	// FindByProfile retrieves every order owned by the given profile,
	// newest first.
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Order, error)
}
