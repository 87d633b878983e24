package postgres

import (
	"context"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// testimonialRepository implements the repository.TestimonialRepository interface.
type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository is the constructor for testimonialRepository.
func NewTestimonialRepository(db *gorm.DB) repository.TestimonialRepository {
	return &testimonialRepository{
		db: db,
	}
}

// Create persists a new testimonial record.
func (repo *testimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	testimonialM := fromTestimonialDomain(testimonial)

	if err := repo.db.WithContext(ctx).Create(testimonialM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required testimonial information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create testimonial")
	}

	testimonial.ID = testimonialM.ID
	testimonial.CreatedAt = testimonialM.CreatedAt
	testimonial.UpdatedAt = testimonialM.UpdatedAt

	return nil
}

// FindByID retrieves a single testimonial by its unique ID.
func (repo *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	var testimonialM model.TestimonialModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&testimonialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTestimonialNotFound
		}

		return nil, errors.Wrap(err, "failed to find testimonial by ID")
	}

	return toTestimonialDomain(&testimonialM), nil
}

// FindAll retrieves every testimonial record, newest first.
func (repo *testimonialRepository) FindAll(ctx context.Context) ([]*entity.Testimonial, error) {
	var testimonialModels []*model.TestimonialModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&testimonialModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list testimonials")
	}

	testimonials := make([]*entity.Testimonial, 0, len(testimonialModels))
	for _, testimonialM := range testimonialModels {
		testimonials = append(testimonials, toTestimonialDomain(testimonialM))
	}

	return testimonials, nil
}

// Update overwrites an existing testimonial record.
func (repo *testimonialRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	testimonialM := fromTestimonialDomain(testimonial)

	result := repo.db.WithContext(ctx).
		Model(&model.TestimonialModel{}).
		Where("id = ?", testimonial.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(testimonialM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update testimonial")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTestimonialNotFound
	}

	return nil
}

// Delete hard-deletes a testimonial record.
func (repo *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TestimonialModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete testimonial")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTestimonialNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTestimonialDomain converts a GORM TestimonialModel to a domain Testimonial entity.
func toTestimonialDomain(data *model.TestimonialModel) *entity.Testimonial {
	if data == nil {
		return nil
	}

	return &entity.Testimonial{
		ID:        data.ID,
		Name:      data.Name,
		Content:   data.Content,
		Image:     data.Image,
		Author:    data.Author,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTestimonialDomain converts a domain Testimonial entity to a GORM TestimonialModel.
func fromTestimonialDomain(data *entity.Testimonial) *model.TestimonialModel {
	if data == nil {
		return nil
	}

	return &model.TestimonialModel{
		ID:        data.ID,
		Name:      data.Name,
		Content:   data.Content,
		Image:     data.Image,
		Author:    data.Author,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
