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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	storage     *mockSvc.MockMediaStorage
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	storage := mockSvc.NewMockMediaStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Storage:     storage,
		Logger:      logger,
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
		storage:     storage,
	}
}

func testUpload(name string) *usecase.MediaUpload {
	return &usecase.MediaUpload{
		FileName:    name,
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	}
}

func TestProductService_CreateProduct_UploadsBeforePersisting(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:     "Chew Toy",
		Category: "toys",
		Price:    9.99,
		Image:    testUpload("toy.png"),
	}

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("https://media.example.com/products/toy.png", nil)

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Chew Toy", product.Name)
	assert.Equal(t, "https://media.example.com/products/toy.png", product.Image)
}

func TestProductService_CreateProduct_UploadFailureLeavesCatalogUntouched(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Name:  "Chew Toy",
		Price: 9.99,
		Image: testUpload("toy.png"),
	}

	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	_, err := fx.service.CreateProduct(ctx, input)

	require.Error(t, err)
	// No Create expectation was set on the repository: a persisted record
	// referencing a failed upload would trip the mock.
}

func TestProductService_CreateProduct_RequiresImage(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:  "Chew Toy",
		Price: 9.99,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_UpdateProduct_PartialFields(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	stored := &entity.Product{
		ID:       uuid.New(),
		Name:     "Chew Toy",
		Category: "toys",
		Image:    "https://media.example.com/products/toy.png",
		Price:    9.99,
	}
	newPrice := 7.49

	fx.productRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, stored.ID, &usecase.UpdateProductInput{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.InDelta(t, 7.49, updated.Price, 0.001)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Chew Toy", updated.Name)
	assert.Equal(t, "https://media.example.com/products/toy.png", updated.Image)
}

func TestProductService_UpdateProduct_ReplacesImage(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	stored := &entity.Product{
		ID:    uuid.New(),
		Name:  "Chew Toy",
		Image: "https://media.example.com/products/old.png",
		Price: 9.99,
	}

	fx.productRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("https://media.example.com/products/new.png", nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, stored.ID, &usecase.UpdateProductInput{
		Image: testUpload("new.png"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/products/new.png", updated.Image)
}

func TestProductService_DeleteProduct_ReturnsFinalState(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	stored := &entity.Product{ID: uuid.New(), Name: "Chew Toy", Price: 9.99}

	fx.productRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.productRepo.EXPECT().Delete(ctx, stored.ID).Return(nil)

	deleted, err := fx.service.DeleteProduct(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, stored, deleted)
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Chew Toy"},
		{ID: uuid.New(), Name: "Leash"},
	}

	fx.productRepo.EXPECT().FindAll(ctx).Return(products, nil)

	listed, err := fx.service.ListProducts(ctx)

	require.NoError(t, err)
	assert.Equal(t, products, listed)
}
