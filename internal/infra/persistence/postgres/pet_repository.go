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

// petRepository implements the repository.PetRepository interface.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository is the constructor for petRepository.
func NewPetRepository(db *gorm.DB) repository.PetRepository {
	return &petRepository{
		db: db,
	}
}

// Create persists a new pet record.
func (repo *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	if err := repo.db.WithContext(ctx).Create(petM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required pet information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pet")
	}

	pet.ID = petM.ID
	pet.CreatedAt = petM.CreatedAt
	pet.UpdatedAt = petM.UpdatedAt

	return nil
}

// FindByID retrieves a single pet by its unique ID.
func (repo *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petM model.PetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&petM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet by ID")
	}

	return toPetDomain(&petM), nil
}

// FindAll retrieves every pet record, newest first.
func (repo *petRepository) FindAll(ctx context.Context) ([]*entity.Pet, error) {
	var petModels []*model.PetModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&petModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	pets := make([]*entity.Pet, 0, len(petModels))
	for _, petM := range petModels {
		pets = append(pets, toPetDomain(petM))
	}

	return pets, nil
}

// Update overwrites an existing pet record.
func (repo *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	petM := fromPetDomain(pet)

	result := repo.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("id = ?", pet.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(petM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update pet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// Delete hard-deletes a pet record. Line items referencing it stay in place
// and are skipped when their collection is materialized.
func (repo *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PetModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPetNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPetDomain converts a GORM PetModel to a domain Pet entity.
func toPetDomain(data *model.PetModel) *entity.Pet {
	if data == nil {
		return nil
	}

	return &entity.Pet{
		ID:              data.ID,
		Breed:           data.Breed,
		Category:        data.Category,
		Description:     data.Description,
		Image:           data.Image,
		Images:          data.Images,
		Videos:          data.Videos,
		Color:           data.Color,
		BodyType:        data.BodyType,
		Height:          data.Height,
		Weight:          data.Weight,
		DistinctFeature: data.DistinctFeature,
		Vaccinations:    data.Vaccinations,
		Temperament:     data.Temperament,
		Food:            data.Food,
		FunFact:         data.FunFact,
		Toys:            data.Toys,
		Gender:          data.Gender,
		Price:           data.Price,
		OriginalPrice:   data.OriginalPrice,
		Discount:        data.Discount,
		Offers:          data.Offers,
		Sizes:           data.Sizes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromPetDomain converts a domain Pet entity to a GORM PetModel.
func fromPetDomain(data *entity.Pet) *model.PetModel {
	if data == nil {
		return nil
	}

	return &model.PetModel{
		ID:              data.ID,
		Breed:           data.Breed,
		Category:        data.Category,
		Description:     data.Description,
		Image:           data.Image,
		Images:          data.Images,
		Videos:          data.Videos,
		Color:           data.Color,
		BodyType:        data.BodyType,
		Height:          data.Height,
		Weight:          data.Weight,
		DistinctFeature: data.DistinctFeature,
		Vaccinations:    data.Vaccinations,
		Temperament:     data.Temperament,
		Food:            data.Food,
		FunFact:         data.FunFact,
		Toys:            data.Toys,
		Gender:          data.Gender,
		Price:           data.Price,
		OriginalPrice:   data.OriginalPrice,
		Discount:        data.Discount,
		Offers:          data.Offers,
		Sizes:           data.Sizes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
