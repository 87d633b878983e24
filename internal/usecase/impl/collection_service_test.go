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

// collectionServiceFixtures holds all test dependencies for collection service tests.
type collectionServiceFixtures struct {
	service      usecase.CollectionUsecase
	txManager    *mockRepo.MockTransactionManager
	profileRepo  *mockRepo.MockProfileRepository
	lineItemRepo *mockRepo.MockLineItemRepository
	productRepo  *mockRepo.MockProductRepository
	petRepo      *mockRepo.MockPetRepository
}

func createTestCollectionService(t *testing.T) collectionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	lineItemRepo := mockRepo.NewMockLineItemRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	petRepo := mockRepo.NewMockPetRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCollectionService(CollectionServiceParams{
		TxManager:    txManager,
		ProfileRepo:  profileRepo,
		LineItemRepo: lineItemRepo,
		ProductRepo:  productRepo,
		PetRepo:      petRepo,
		Logger:       logger,
	})

	return collectionServiceFixtures{
		service:      service,
		txManager:    txManager,
		profileRepo:  profileRepo,
		lineItemRepo: lineItemRepo,
		productRepo:  productRepo,
		petRepo:      petRepo,
	}
}

// txFixtures are the transaction-bound mocks handed to the service via the
// repository factory during one Execute call.
type txFixtures struct {
	factory      *mockRepo.MockRepositoryFactory
	profileRepo  *mockRepo.MockProfileRepository
	lineItemRepo *mockRepo.MockLineItemRepository
	productRepo  *mockRepo.MockProductRepository
	petRepo      *mockRepo.MockPetRepository
}

// expectTransaction wires the tx manager mock so Execute runs the callback
// against a fresh set of transaction-bound repository mocks.
func expectTransaction(t *testing.T, fx collectionServiceFixtures, ctx context.Context, setup func(txFixtures)) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			tx := txFixtures{
				factory:      mockRepo.NewMockRepositoryFactory(t),
				profileRepo:  mockRepo.NewMockProfileRepository(t),
				lineItemRepo: mockRepo.NewMockLineItemRepository(t),
				productRepo:  mockRepo.NewMockProductRepository(t),
				petRepo:      mockRepo.NewMockPetRepository(t),
			}
			setup(tx)

			return fn(tx.factory)
		})
}

func testProfile(subjectID string) *entity.Profile {
	return &entity.Profile{ID: uuid.New(), SubjectID: subjectID, Role: entity.RoleUser}
}

func TestCollectionService_AddItem_NewEntry(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	product := &entity.Product{ID: uuid.New(), Name: "Chew Toy", Price: 9.99}
	target := product.Ref()

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.factory.EXPECT().LineItemRepo().Return(tx.lineItemRepo)
		tx.factory.EXPECT().ProductRepo().Return(tx.productRepo)

		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(profile, nil)
		tx.lineItemRepo.EXPECT().
			ListCollection(ctx, profile.ID, entity.CollectionKindCart).
			Return(cart.Collection{}, nil)
		tx.productRepo.EXPECT().FindByID(ctx, target.ID).Return(product, nil)
		tx.lineItemRepo.EXPECT().
			ReplaceCollection(ctx, profile.ID, entity.CollectionKindCart, cart.Collection{
				{Target: target, Quantity: 2},
			}).
			Return(nil)
	})

	output, err := fx.service.AddItem(ctx, subjectID, entity.CollectionKindCart, &usecase.AddItemInput{
		Target:   target,
		Quantity: 2,
	})

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, 2, output.Items[0].Quantity)
}

func TestCollectionService_AddItem_MergesExistingEntry(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	product := &entity.Product{ID: uuid.New(), Name: "Chew Toy", Price: 9.99}
	target := product.Ref()

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.factory.EXPECT().LineItemRepo().Return(tx.lineItemRepo)
		tx.factory.EXPECT().ProductRepo().Return(tx.productRepo)

		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(profile, nil)
		tx.lineItemRepo.EXPECT().
			ListCollection(ctx, profile.ID, entity.CollectionKindCart).
			Return(cart.Collection{{Target: target, Quantity: 1}}, nil)
		tx.productRepo.EXPECT().FindByID(ctx, target.ID).Return(product, nil)
		tx.lineItemRepo.EXPECT().
			ReplaceCollection(ctx, profile.ID, entity.CollectionKindCart, cart.Collection{
				{Target: target, Quantity: 4},
			}).
			Return(nil)
	})

	output, err := fx.service.AddItem(ctx, subjectID, entity.CollectionKindCart, &usecase.AddItemInput{
		Target:   target,
		Quantity: 3,
	})

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, 4, output.Items[0].Quantity)
}

func TestCollectionService_AddItem_DefaultsQuantityToOne(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	pet := &entity.Pet{ID: uuid.New(), Breed: "Beagle", Price: 350}
	target := pet.Ref()

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.factory.EXPECT().LineItemRepo().Return(tx.lineItemRepo)
		tx.factory.EXPECT().PetRepo().Return(tx.petRepo)

		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(profile, nil)
		tx.lineItemRepo.EXPECT().
			ListCollection(ctx, profile.ID, entity.CollectionKindWishlist).
			Return(cart.Collection{}, nil)
		tx.petRepo.EXPECT().FindByID(ctx, target.ID).Return(pet, nil)
		tx.lineItemRepo.EXPECT().
			ReplaceCollection(ctx, profile.ID, entity.CollectionKindWishlist, cart.Collection{
				{Target: target, Quantity: 1},
			}).
			Return(nil)
	})

	output, err := fx.service.AddItem(ctx, subjectID, entity.CollectionKindWishlist, &usecase.AddItemInput{
		Target: target,
	})

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, 1, output.Items[0].Quantity)
}

func TestCollectionService_AddItem_TargetMissingFromCatalog(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	target := entity.TargetRef{Kind: entity.TargetKindProduct, ID: uuid.New()}

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.factory.EXPECT().LineItemRepo().Return(tx.lineItemRepo)
		tx.factory.EXPECT().ProductRepo().Return(tx.productRepo)

		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(profile, nil)
		tx.lineItemRepo.EXPECT().
			ListCollection(ctx, profile.ID, entity.CollectionKindCart).
			Return(cart.Collection{}, nil)
		tx.productRepo.EXPECT().FindByID(ctx, target.ID).Return(nil, repository.ErrProductNotFound)
	})

	_, err := fx.service.AddItem(ctx, subjectID, entity.CollectionKindCart, &usecase.AddItemInput{
		Target:   target,
		Quantity: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCollectionService_AddItem_ProfileNotFound(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "unknown-subject"
	target := entity.TargetRef{Kind: entity.TargetKindProduct, ID: uuid.New()}

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(nil, repository.ErrProfileNotFound)
	})

	_, err := fx.service.AddItem(ctx, subjectID, entity.CollectionKindCart, &usecase.AddItemInput{
		Target:   target,
		Quantity: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestCollectionService_AdjustQuantity_DecrementToZeroEvicts(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	target := entity.TargetRef{Kind: entity.TargetKindProduct, ID: uuid.New()}
	other := entity.TargetRef{Kind: entity.TargetKindPet, ID: uuid.New()}

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.factory.EXPECT().LineItemRepo().Return(tx.lineItemRepo)

		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(profile, nil)
		tx.lineItemRepo.EXPECT().
			ListCollection(ctx, profile.ID, entity.CollectionKindCart).
			Return(cart.Collection{
				{Target: target, Quantity: 1},
				{Target: other, Quantity: 2},
			}, nil)
		tx.lineItemRepo.EXPECT().
			ReplaceCollection(ctx, profile.ID, entity.CollectionKindCart, cart.Collection{
				{Target: other, Quantity: 2},
			}).
			Return(nil)
	})

	output, err := fx.service.AdjustQuantity(ctx, subjectID, entity.CollectionKindCart, &usecase.AdjustQuantityInput{
		Target: target,
		Delta:  -1,
	})

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, other, output.Items[0].Target)
}

func TestCollectionService_AdjustQuantity_IncrementAbsentResolvesTarget(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	product := &entity.Product{ID: uuid.New(), Name: "Leash", Price: 15}
	target := product.Ref()

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.factory.EXPECT().LineItemRepo().Return(tx.lineItemRepo)
		tx.factory.EXPECT().ProductRepo().Return(tx.productRepo)

		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(profile, nil)
		tx.lineItemRepo.EXPECT().
			ListCollection(ctx, profile.ID, entity.CollectionKindCart).
			Return(cart.Collection{}, nil)
		tx.productRepo.EXPECT().FindByID(ctx, target.ID).Return(product, nil)
		tx.lineItemRepo.EXPECT().
			ReplaceCollection(ctx, profile.ID, entity.CollectionKindCart, cart.Collection{
				{Target: target, Quantity: 1},
			}).
			Return(nil)
	})

	output, err := fx.service.AdjustQuantity(ctx, subjectID, entity.CollectionKindCart, &usecase.AdjustQuantityInput{
		Target: target,
		Delta:  1,
	})

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, 1, output.Items[0].Quantity)
}

func TestCollectionService_AdjustQuantity_DecrementAbsentFails(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	target := entity.TargetRef{Kind: entity.TargetKindProduct, ID: uuid.New()}

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.factory.EXPECT().LineItemRepo().Return(tx.lineItemRepo)

		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(profile, nil)
		tx.lineItemRepo.EXPECT().
			ListCollection(ctx, profile.ID, entity.CollectionKindCart).
			Return(cart.Collection{}, nil)
	})

	_, err := fx.service.AdjustQuantity(ctx, subjectID, entity.CollectionKindCart, &usecase.AdjustQuantityInput{
		Target: target,
		Delta:  -1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotInCollection)
}

func TestCollectionService_AdjustQuantity_RejectsNonUnitDelta(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	target := entity.TargetRef{Kind: entity.TargetKindProduct, ID: uuid.New()}

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.factory.EXPECT().LineItemRepo().Return(tx.lineItemRepo)

		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(profile, nil)
		tx.lineItemRepo.EXPECT().
			ListCollection(ctx, profile.ID, entity.CollectionKindCart).
			Return(cart.Collection{{Target: target, Quantity: 1}}, nil)
	})

	_, err := fx.service.AdjustQuantity(ctx, subjectID, entity.CollectionKindCart, &usecase.AdjustQuantityInput{
		Target: target,
		Delta:  5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCollectionService_RemoveItem_SkipsCatalogResolution(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	// The target was deleted from the catalog; removal must still succeed.
	dangling := entity.TargetRef{Kind: entity.TargetKindProduct, ID: uuid.New()}

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.factory.EXPECT().LineItemRepo().Return(tx.lineItemRepo)

		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(profile, nil)
		tx.lineItemRepo.EXPECT().
			ListCollection(ctx, profile.ID, entity.CollectionKindCart).
			Return(cart.Collection{{Target: dangling, Quantity: 3}}, nil)
		tx.lineItemRepo.EXPECT().
			ReplaceCollection(ctx, profile.ID, entity.CollectionKindCart, cart.Collection{}).
			Return(nil)
	})

	output, err := fx.service.RemoveItem(ctx, subjectID, entity.CollectionKindCart, &usecase.RemoveItemInput{
		Target: dangling,
	})

	require.NoError(t, err)
	assert.Empty(t, output.Items)
}

func TestCollectionService_RemoveItem_AbsentFails(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	target := entity.TargetRef{Kind: entity.TargetKindProduct, ID: uuid.New()}

	expectTransaction(t, fx, ctx, func(tx txFixtures) {
		tx.factory.EXPECT().ProfileRepo().Return(tx.profileRepo)
		tx.factory.EXPECT().LineItemRepo().Return(tx.lineItemRepo)

		tx.profileRepo.EXPECT().AcquireLock(ctx, subjectID).Return(profile, nil)
		tx.lineItemRepo.EXPECT().
			ListCollection(ctx, profile.ID, entity.CollectionKindCart).
			Return(cart.Collection{}, nil)
	})

	_, err := fx.service.RemoveItem(ctx, subjectID, entity.CollectionKindCart, &usecase.RemoveItemInput{
		Target: target,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotInCollection)
}

func TestCollectionService_GetCollection_SkipsDanglingReferences(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := testProfile(subjectID)
	product := &entity.Product{ID: uuid.New(), Name: "Chew Toy", Price: 9.99}
	live := product.Ref()
	dangling := entity.TargetRef{Kind: entity.TargetKindPet, ID: uuid.New()}

	fx.profileRepo.EXPECT().FindBySubject(ctx, subjectID).Return(profile, nil)
	fx.lineItemRepo.EXPECT().
		ListCollection(ctx, profile.ID, entity.CollectionKindCart).
		Return(cart.Collection{
			{Target: live, Quantity: 2},
			{Target: dangling, Quantity: 1},
		}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, live.ID).Return(product, nil)
	fx.petRepo.EXPECT().FindByID(ctx, dangling.ID).Return(nil, repository.ErrPetNotFound)

	output, err := fx.service.GetCollection(ctx, subjectID, entity.CollectionKindCart)

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, live, output.Items[0].Item.Ref)
	assert.Equal(t, 2, output.Items[0].Quantity)
}

func TestCollectionService_GetCollection_ProfileNotFound(t *testing.T) {
	fx := createTestCollectionService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindBySubject(ctx, "unknown-subject").
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetCollection(ctx, "unknown-subject", entity.CollectionKindCart)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
