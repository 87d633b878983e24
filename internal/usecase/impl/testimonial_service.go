package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/domain/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const testimonialMediaPrefix = "testimonials"

const (
	testimonialContentMin = 10
	testimonialContentMax = 500
)

// testimonialService implements the TestimonialUsecase interface.
type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
	storage         service.MediaStorage
	logger          *slog.Logger
}

// TestimonialServiceParams holds dependencies for testimonialService, injected by Fx.
type TestimonialServiceParams struct {
	fx.In

	TestimonialRepo repository.TestimonialRepository
	Storage         service.MediaStorage
	Logger          *slog.Logger
}

// NewTestimonialService is the constructor for testimonialService.
func NewTestimonialService(params TestimonialServiceParams) usecase.TestimonialUsecase {
	return &testimonialService{
		testimonialRepo: params.TestimonialRepo,
		storage:         params.Storage,
		logger:          params.Logger,
	}
}

func (srv *testimonialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTestimonial uploads the reviewer picture first and then persists the record.
func (srv *testimonialService) CreateTestimonial(ctx context.Context, input *usecase.CreateTestimonialInput) (*entity.Testimonial, error) {
	if err := validateTestimonialContent(input.Content); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidation, "name is required")
	}

	var imageURL string
	if input.Image != nil {
		url, err := uploadOne(ctx, srv.storage, testimonialMediaPrefix, input.Image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	testimonial := &entity.Testimonial{
		Name:    strings.TrimSpace(input.Name),
		Content: input.Content,
		Image:   imageURL,
		Author:  input.Author,
		Rating:  input.Rating,
	}

	if err := srv.testimonialRepo.Create(ctx, testimonial); err != nil {
		srv.log(ctx).Error("Failed to create testimonial", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create testimonial")
	}

	srv.log(ctx).Debug("Testimonial created", slog.Any("testimonialID", testimonial.ID))

	return testimonial, nil
}

// GetTestimonial loads one testimonial by id.
func (srv *testimonialService) GetTestimonial(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	testimonial, err := srv.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTestimonialNotFound, "testimonial not found")
		}

		return nil, errors.Wrap(err, "failed to find testimonial")
	}

	return testimonial, nil
}

// ListTestimonials returns every testimonial.
func (srv *testimonialService) ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	testimonials, err := srv.testimonialRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list testimonials")
	}

	return testimonials, nil
}

// UpdateTestimonial applies a partial replacement over a testimonial record.
func (srv *testimonialService) UpdateTestimonial(ctx context.Context, id uuid.UUID, input *usecase.UpdateTestimonialInput) (*entity.Testimonial, error) {
	testimonial, err := srv.GetTestimonial(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		if err := validateTestimonialContent(*input.Content); err != nil {
			return nil, err
		}
		testimonial.Content = *input.Content
	}
	if input.Name != nil {
		testimonial.Name = strings.TrimSpace(*input.Name)
	}
	if input.Author != nil {
		testimonial.Author = *input.Author
	}
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}
	if input.Image != nil {
		url, err := uploadOne(ctx, srv.storage, testimonialMediaPrefix, input.Image)
		if err != nil {
			return nil, err
		}
		testimonial.Image = url
	}

	if err := srv.testimonialRepo.Update(ctx, testimonial); err != nil {
		srv.log(ctx).Error("Failed to update testimonial", slog.Any("testimonialID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update testimonial")
	}

	return testimonial, nil
}

// DeleteTestimonial removes the record and returns its final state.
func (srv *testimonialService) DeleteTestimonial(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	testimonial, err := srv.GetTestimonial(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.testimonialRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete testimonial", slog.Any("testimonialID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete testimonial")
	}

	srv.log(ctx).Info("Testimonial deleted", slog.Any("testimonialID", id))

	return testimonial, nil
}

func validateTestimonialContent(content string) error {
	length := utf8.RuneCountInString(content)
	if length < testimonialContentMin || length > testimonialContentMax {
		return errors.Wrap(domainerrors.ErrValidation, "content must be between 10 and 500 characters")
	}

	return nil
}
