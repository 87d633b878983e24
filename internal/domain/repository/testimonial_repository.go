package repository

import (
	"context"
	"errors"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTestimonialNotFound is a domain-specific error returned when a testimonial is not found.
var ErrTestimonialNotFound = errors.New("testimonial not found")

// TestimonialRepository defines the standard operations for testimonial persistence.
type TestimonialRepository interface {
	// Create persists a new testimonial record.
	Create(ctx context.Context, testimonial *entity.Testimonial) error

	// FindByID retrieves a single testimonial by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)

	// FindAll retrieves every testimonial record.
	FindAll(ctx context.Context) ([]*entity.Testimonial, error)

	// Update overwrites an existing testimonial record.
	Update(ctx context.Context, testimonial *entity.Testimonial) error

	// Delete hard-deletes a testimonial record.
	Delete(ctx context.Context, id uuid.UUID) error
}
