package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTestimonialInput defines the data required to create a testimonial.
type CreateTestimonialInput struct {
	Name    string
	Content string
	Author  string
	Rating  string
	Image   *MediaUpload
}

// UpdateTestimonialInput applies a partial field replacement over a testimonial.
type UpdateTestimonialInput struct {
	Name    *string
	Content *string
	Author  *string
	Rating  *string
	Image   *MediaUpload
}

// TestimonialUsecase defines the operations over testimonial records.
type TestimonialUsecase interface {
	CreateTestimonial(ctx context.Context, input *CreateTestimonialInput) (*entity.Testimonial, error)
	GetTestimonial(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uuid.UUID, input *UpdateTestimonialInput) (*entity.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
}
