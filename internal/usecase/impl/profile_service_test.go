package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pawmart/internal/domain/cart"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	mockRepo "pawmart/internal/mocks/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	profileRepo  *mockRepo.MockProfileRepository
	lineItemRepo *mockRepo.MockLineItemRepository
	productRepo  *mockRepo.MockProductRepository
	petRepo      *mockRepo.MockPetRepository
	orderRepo    *mockRepo.MockOrderRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	lineItemRepo := mockRepo.NewMockLineItemRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		ProfileRepo:  profileRepo,
		LineItemRepo: lineItemRepo,
		ProductRepo:  productRepo,
		PetRepo:      petRepo,
		OrderRepo:    orderRepo,
		Logger:       logger,
	})

	return profileServiceFixtures{
		service:      service,
		profileRepo:  profileRepo,
		lineItemRepo: lineItemRepo,
		productRepo:  productRepo,
		petRepo:      petRepo,
		orderRepo:    orderRepo,
	}
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	input := &usecase.CreateProfileInput{
		Name:    "Jamie Doe",
		Email:   "jamie@example.com",
		Phone:   "555-0100",
		PetName: "Rex",
		PetType: "dog",
		PetAge:  3,
	}

	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) {
			profile.ID = uuid.New()
		}).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, subjectID, input)

	require.NoError(t, err)
	assert.Equal(t, subjectID, profile.SubjectID)
	assert.Equal(t, "Jamie Doe", profile.Name)
	assert.Equal(t, entity.RoleUser, profile.Role)
}

func TestProfileService_CreateProfile_Duplicate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateProfileInput{
		Name:  "Jamie Doe",
		Email: "jamie@example.com",
		Phone: "555-0100",
	}

	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(repository.ErrProfileAlreadyExists)

	_, err := fx.service.CreateProfile(ctx, "firebase-subject-1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestProfileService_CreateProfile_MissingRequiredFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	_, err := fx.service.CreateProfile(ctx, "firebase-subject-1", &usecase.CreateProfileInput{
		Name:  "Jamie Doe",
		Email: "jamie@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestProfileService_GetProfile_MaterializesCollections(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := &entity.Profile{ID: uuid.New(), SubjectID: subjectID, Name: "Jamie Doe", Role: entity.RoleUser}
	product := &entity.Product{ID: uuid.New(), Name: "Chew Toy", Price: 9.99}
	dangling := entity.TargetRef{Kind: entity.TargetKindPet, ID: uuid.New()}
	orders := []*entity.Order{{ID: uuid.New(), ProfileID: profile.ID, TotalAmount: 42}}

	fx.profileRepo.EXPECT().FindBySubject(ctx, subjectID).Return(profile, nil)
	fx.lineItemRepo.EXPECT().
		ListCollection(ctx, profile.ID, entity.CollectionKindCart).
		Return(cart.Collection{
			{Target: product.Ref(), Quantity: 2},
			{Target: dangling, Quantity: 1},
		}, nil)
	fx.lineItemRepo.EXPECT().
		ListCollection(ctx, profile.ID, entity.CollectionKindWishlist).
		Return(cart.Collection{}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.petRepo.EXPECT().FindByID(ctx, dangling.ID).Return(nil, repository.ErrPetNotFound)
	fx.orderRepo.EXPECT().FindByProfile(ctx, profile.ID).Return(orders, nil)

	output, err := fx.service.GetProfile(ctx, subjectID)

	require.NoError(t, err)
	assert.Equal(t, profile, output.Profile)
	require.Len(t, output.Cart, 1)
	assert.Equal(t, product.Ref(), output.Cart[0].Item.Ref)
	assert.Empty(t, output.Wishlist)
	assert.Equal(t, orders, output.Orders)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindBySubject(ctx, "unknown-subject").
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, "unknown-subject")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_GetRole(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profile := &entity.Profile{ID: uuid.New(), SubjectID: "admin-subject", Role: entity.RoleAdmin}

	fx.profileRepo.EXPECT().FindBySubject(ctx, "admin-subject").Return(profile, nil)

	role, err := fx.service.GetRole(ctx, "admin-subject")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}
