package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product. Image is
// mandatory: a product cannot exist without a primary media reference.
type CreateProductInput struct {
	Name            string
	Category        string
	Description     string
	ShippingCharges float64
	Height          float64
	Weight          float64
	Feature         string
	Benefits        string
	Price           float64
	OriginalPrice   float64
	Discount        float64
	Offers          string
	Sizes           string
	Image           *MediaUpload
	Images          []MediaUpload
	Videos          []MediaUpload
}

// UpdateProductInput applies a partial field replacement: nil fields retain
// the stored value, media uploads replace the stored references when present.
type UpdateProductInput struct {
	Name            *string
	Category        *string
	Description     *string
	ShippingCharges *float64
	Height          *float64
	Weight          *float64
	Feature         *string
	Benefits        *string
	Price           *float64
	OriginalPrice   *float64
	Discount        *float64
	Offers          *string
	Sizes           *string
	Image           *MediaUpload
	Images          []MediaUpload
	Videos          []MediaUpload
}

// ProductUsecase defines the catalog operations over product records.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	UploadMedia(ctx context.Context, upload *MediaUpload) (string, error)
}
