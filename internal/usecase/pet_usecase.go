package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePetInput defines the data required to list a pet for sale.
type CreatePetInput struct {
	Breed           string
	Category        string
	Description     string
	Color           string
	BodyType        string
	Height          string
	Weight          string
	DistinctFeature string
	Vaccinations    string
	Temperament     string
	Food            string
	FunFact         string
	Toys            string
	Gender          string
	Price           float64
	OriginalPrice   float64
	Discount        float64
	Offers          string
	Sizes           string
	Image           *MediaUpload
	Images          []MediaUpload
	Videos          []MediaUpload
}

// UpdatePetInput applies a partial field replacement over a pet record.
type UpdatePetInput struct {
	Breed           *string
	Category        *string
	Description     *string
	Color           *string
	BodyType        *string
	Height          *string
	Weight          *string
	DistinctFeature *string
	Vaccinations    *string
	Temperament     *string
	Food            *string
	FunFact         *string
	Toys            *string
	Gender          *string
	Price           *float64
	OriginalPrice   *float64
	Discount        *float64
	Offers          *string
	Sizes           *string
	Image           *MediaUpload
	Images          []MediaUpload
	Videos          []MediaUpload
}

// PetUsecase defines the catalog operations over pet records.
type PetUsecase interface {
	CreatePet(ctx context.Context, input *CreatePetInput) (*entity.Pet, error)
	GetPet(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
	ListPets(ctx context.Context) ([]*entity.Pet, error)
	UpdatePet(ctx context.Context, id uuid.UUID, input *UpdatePetInput) (*entity.Pet, error)
	DeletePet(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
}
