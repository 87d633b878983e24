package repository

import (
	"context"
	"errors"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPetNotFound is a domain-specific error returned when a pet is not found.
var ErrPetNotFound = errors.New("pet not found")

// PetRepository defines the standard operations for pet persistence.
type PetRepository interface {
	// Create persists a new pet record.
	Create(ctx context.Context, pet *entity.Pet) error

	// FindByID retrieves a single pet by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)

	// FindAll retrieves every pet record.
	FindAll(ctx context.Context) ([]*entity.Pet, error)

	// Update overwrites an existing pet record.
	Update(ctx context.Context, pet *entity.Pet) error

	// Delete hard-deletes a pet record.
	Delete(ctx context.Context, id uuid.UUID) error
}
