package impl

import (
	"context"
	"log/slog"
	"strings"

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

const petMediaPrefix = "pets"

// petService implements the PetUsecase interface.
type petService struct {
	petRepo repository.PetRepository
	storage service.MediaStorage
	logger  *slog.Logger
}

// PetServiceParams holds dependencies for petService, injected by Fx.
type PetServiceParams struct {
	fx.In

	PetRepo repository.PetRepository
	Storage service.MediaStorage
	Logger  *slog.Logger
}

// NewPetService is the constructor for petService.
func NewPetService(params PetServiceParams) usecase.PetUsecase {
	return &petService{
		petRepo: params.PetRepo,
		storage: params.Storage,
		logger:  params.Logger,
	}
}

func (srv *petService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePet uploads all media first and only then persists the record.
func (srv *petService) CreatePet(ctx context.Context, input *usecase.CreatePetInput) (*entity.Pet, error) {
	if err := validatePetInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating pet listing", slog.String("breed", input.Breed))

	imageURL, err := uploadOne(ctx, srv.storage, petMediaPrefix, input.Image)
	if err != nil {
		return nil, err
	}

	imageURLs, err := uploadAll(ctx, srv.storage, petMediaPrefix, input.Images)
	if err != nil {
		return nil, err
	}

	videoURLs, err := uploadAll(ctx, srv.storage, petMediaPrefix, input.Videos)
	if err != nil {
		return nil, err
	}

	pet := &entity.Pet{
		Breed:           strings.TrimSpace(input.Breed),
		Category:        input.Category,
		Description:     input.Description,
		Image:           imageURL,
		Images:          imageURLs,
		Videos:          videoURLs,
		Color:           input.Color,
		BodyType:        input.BodyType,
		Height:          input.Height,
		Weight:          input.Weight,
		DistinctFeature: input.DistinctFeature,
		Vaccinations:    input.Vaccinations,
		Temperament:     input.Temperament,
		Food:            input.Food,
		FunFact:         input.FunFact,
		Toys:            input.Toys,
		Gender:          input.Gender,
		Price:           input.Price,
		OriginalPrice:   input.OriginalPrice,
		Discount:        input.Discount,
		Offers:          input.Offers,
		Sizes:           input.Sizes,
	}

	if err := srv.petRepo.Create(ctx, pet); err != nil {
		srv.log(ctx).Error("Failed to create pet listing", slog.String("breed", input.Breed), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create pet")
	}

	srv.log(ctx).Debug("Pet listing created", slog.Any("petID", pet.ID))

	return pet, nil
}

// GetPet loads one pet by id.
func (srv *petService) GetPet(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	pet, err := srv.petRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPetNotFound, "pet not found")
		}

		return nil, errors.Wrap(err, "failed to find pet")
	}

	return pet, nil
}

// ListPets returns all pet listings.
func (srv *petService) ListPets(ctx context.Context) ([]*entity.Pet, error) {
	pets, err := srv.petRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pets")
	}

	return pets, nil
}

// UpdatePet applies a partial replacement over a pet record.
func (srv *petService) UpdatePet(ctx context.Context, id uuid.UUID, input *usecase.UpdatePetInput) (*entity.Pet, error) {
	pet, err := srv.GetPet(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Image != nil {
		url, err := uploadOne(ctx, srv.storage, petMediaPrefix, input.Image)
		if err != nil {
			return nil, err
		}
		pet.Image = url
	}
	if len(input.Images) > 0 {
		urls, err := uploadAll(ctx, srv.storage, petMediaPrefix, input.Images)
		if err != nil {
			return nil, err
		}
		pet.Images = urls
	}
	if len(input.Videos) > 0 {
		urls, err := uploadAll(ctx, srv.storage, petMediaPrefix, input.Videos)
		if err != nil {
			return nil, err
		}
		pet.Videos = urls
	}

	applyPetFields(pet, input)

	if err := srv.petRepo.Update(ctx, pet); err != nil {
		srv.log(ctx).Error("Failed to update pet listing", slog.Any("petID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update pet")
	}

	srv.log(ctx).Debug("Pet listing updated", slog.Any("petID", id))

	return pet, nil
}

// DeletePet removes the record and returns its final state.
func (srv *petService) DeletePet(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	pet, err := srv.GetPet(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.petRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete pet listing", slog.Any("petID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete pet")
	}

	srv.log(ctx).Info("Pet listing deleted", slog.Any("petID", id))

	return pet, nil
}

func applyPetFields(pet *entity.Pet, input *usecase.UpdatePetInput) {
	if input.Breed != nil {
		pet.Breed = strings.TrimSpace(*input.Breed)
	}
	if input.Category != nil {
		pet.Category = *input.Category
	}
	if input.Description != nil {
		pet.Description = *input.Description
	}
	if input.Color != nil {
		pet.Color = *input.Color
	}
	if input.BodyType != nil {
		pet.BodyType = *input.BodyType
	}
	if input.Height != nil {
		pet.Height = *input.Height
	}
	if input.Weight != nil {
		pet.Weight = *input.Weight
	}
	if input.DistinctFeature != nil {
		pet.DistinctFeature = *input.DistinctFeature
	}
	if input.Vaccinations != nil {
		pet.Vaccinations = *input.Vaccinations
	}
	if input.Temperament != nil {
		pet.Temperament = *input.Temperament
	}
	if input.Food != nil {
		pet.Food = *input.Food
	}
	if input.FunFact != nil {
		pet.FunFact = *input.FunFact
	}
	if input.Toys != nil {
		pet.Toys = *input.Toys
	}
	if input.Gender != nil {
		pet.Gender = *input.Gender
	}
	if input.Price != nil {
		pet.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		pet.OriginalPrice = *input.OriginalPrice
	}
	if input.Discount != nil {
		pet.Discount = *input.Discount
	}
	if input.Offers != nil {
		pet.Offers = *input.Offers
	}
	if input.Sizes != nil {
		pet.Sizes = *input.Sizes
	}
}

func validatePetInput(input *usecase.CreatePetInput) error {
	switch {
	case strings.TrimSpace(input.Breed) == "":
		return errors.Wrap(domainerrors.ErrValidation, "breed is required")
	case input.Price <= 0:
		return errors.Wrap(domainerrors.ErrValidation, "price must be positive")
	case input.Image == nil:
		return errors.Wrap(domainerrors.ErrValidation, "primary image is required")
	}

	return nil
}
