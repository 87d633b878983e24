package repository

import (
	"context"
	"errors"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product record.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll retrieves every product record.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Update overwrites an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// Delete hard-deletes a product record.
	Delete(ctx context.Context, id uuid.UUID) error
}
