package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	mockRepo "pawmart/internal/mocks/repository"
	mockSvc "pawmart/internal/mocks/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testimonialServiceFixtures holds all test dependencies for testimonial service tests.
type testimonialServiceFixtures struct {
	service         usecase.TestimonialUsecase
	testimonialRepo *mockRepo.MockTestimonialRepository
	storage         *mockSvc.MockMediaStorage
}

func createTestTestimonialService(t *testing.T) testimonialServiceFixtures {
	testimonialRepo := mockRepo.NewMockTestimonialRepository(t)
	storage := mockSvc.NewMockMediaStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTestimonialService(TestimonialServiceParams{
		TestimonialRepo: testimonialRepo,
		Storage:         storage,
		Logger:          logger,
	})

	return testimonialServiceFixtures{
		service:         service,
		testimonialRepo: testimonialRepo,
		storage:         storage,
	}
}

func TestTestimonialService_CreateTestimonial_Success(t *testing.T) {
	fx := createTestTestimonialService(t)

	ctx := context.Background()
	input := &usecase.CreateTestimonialInput{
		Name:    "Jamie Doe",
		Content: "My pup loves everything we ordered here.",
		Author:  "Jamie",
		Rating:  "5",
	}

	fx.testimonialRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Testimonial")).
		Run(func(_ context.Context, testimonial *entity.Testimonial) {
			testimonial.ID = uuid.New()
		}).
		Return(nil)

	testimonial, err := fx.service.CreateTestimonial(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Jamie Doe", testimonial.Name)
	assert.Empty(t, testimonial.Image)
}

func TestTestimonialService_CreateTestimonial_ContentTooShort(t *testing.T) {
	fx := createTestTestimonialService(t)

	ctx := context.Background()

	_, err := fx.service.CreateTestimonial(ctx, &usecase.CreateTestimonialInput{
		Name:    "Jamie Doe",
		Content: "too short",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestTestimonialService_CreateTestimonial_ContentTooLong(t *testing.T) {
	fx := createTestTestimonialService(t)

	ctx := context.Background()

	_, err := fx.service.CreateTestimonial(ctx, &usecase.CreateTestimonialInput{
		Name:    "Jamie Doe",
		Content: strings.Repeat("x", 501),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestTestimonialService_UpdateTestimonial_PartialFields(t *testing.T) {
	fx := createTestTestimonialService(t)

	ctx := context.Background()
	stored := &entity.Testimonial{
		ID:      uuid.New(),
		Name:    "Jamie Doe",
		Content: "My pup loves everything we ordered here.",
		Rating:  "4",
	}
	newRating := "5"

	fx.testimonialRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.testimonialRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Testimonial")).
		Return(nil)

	updated, err := fx.service.UpdateTestimonial(ctx, stored.ID, &usecase.UpdateTestimonialInput{
		Rating: &newRating,
	})

	require.NoError(t, err)
	assert.Equal(t, "5", updated.Rating)
	assert.Equal(t, "Jamie Doe", updated.Name)
}

func TestTestimonialService_DeleteTestimonial_NotFound(t *testing.T) {
	fx := createTestTestimonialService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.testimonialRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrTestimonialNotFound)

	_, err := fx.service.DeleteTestimonial(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTestimonialNotFound)
}
