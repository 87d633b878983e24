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

const productMediaPrefix = "products"

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	storage     service.MediaStorage
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Storage     service.MediaStorage
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct uploads all media first and only then persists the record,
// so a stored product never references a non-durable location.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating product", slog.String("name", input.Name))

	imageURL, err := uploadOne(ctx, srv.storage, productMediaPrefix, input.Image)
	if err != nil {
		return nil, err
	}

	imageURLs, err := uploadAll(ctx, srv.storage, productMediaPrefix, input.Images)
	if err != nil {
		return nil, err
	}

	videoURLs, err := uploadAll(ctx, srv.storage, productMediaPrefix, input.Videos)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:            strings.TrimSpace(input.Name),
		Category:        input.Category,
		Description:     input.Description,
		Image:           imageURL,
		Images:          imageURLs,
		Videos:          videoURLs,
		ShippingCharges: input.ShippingCharges,
		Height:          input.Height,
		Weight:          input.Weight,
		Feature:         input.Feature,
		Benefits:        input.Benefits,
		Price:           input.Price,
		OriginalPrice:   input.OriginalPrice,
		Discount:        input.Discount,
		Offers:          input.Offers,
		Sizes:           input.Sizes,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// GetProduct loads one product by id.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts returns the full product catalog.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct applies a partial replacement: nil fields keep the stored
// value, new media uploads replace the stored references.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Image != nil {
		url, err := uploadOne(ctx, srv.storage, productMediaPrefix, input.Image)
		if err != nil {
			return nil, err
		}
		product.Image = url
	}
	if len(input.Images) > 0 {
		urls, err := uploadAll(ctx, srv.storage, productMediaPrefix, input.Images)
		if err != nil {
			return nil, err
		}
		product.Images = urls
	}
	if len(input.Videos) > 0 {
		urls, err := uploadAll(ctx, srv.storage, productMediaPrefix, input.Videos)
		if err != nil {
			return nil, err
		}
		product.Videos = urls
	}

	applyProductFields(product, input)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Debug("Product updated", slog.Any("productID", id))

	return product, nil
}

// DeleteProduct removes the record and returns its final state. Collection
// entries pointing at the deleted product stay in place and are skipped when
// a collection is materialized.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return product, nil
}

// UploadMedia stores a standalone asset and returns its durable URL.
func (srv *productService) UploadMedia(ctx context.Context, upload *usecase.MediaUpload) (string, error) {
	return uploadOne(ctx, srv.storage, productMediaPrefix, upload)
}

func applyProductFields(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.ShippingCharges != nil {
		product.ShippingCharges = *input.ShippingCharges
	}
	if input.Height != nil {
		product.Height = *input.Height
	}
	if input.Weight != nil {
		product.Weight = *input.Weight
	}
	if input.Feature != nil {
		product.Feature = *input.Feature
	}
	if input.Benefits != nil {
		product.Benefits = *input.Benefits
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = *input.OriginalPrice
	}
	if input.Discount != nil {
		product.Discount = *input.Discount
	}
	if input.Offers != nil {
		product.Offers = *input.Offers
	}
	if input.Sizes != nil {
		product.Sizes = *input.Sizes
	}
}

func validateProductInput(input *usecase.CreateProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return errors.Wrap(domainerrors.ErrValidation, "name is required")
	case input.Price <= 0:
		return errors.Wrap(domainerrors.ErrValidation, "price must be positive")
	case input.Image == nil:
		return errors.Wrap(domainerrors.ErrValidation, "primary image is required")
	}

	return nil
}
