package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"pawmart/internal/domain/cart"
	"pawmart/internal/domain/entity"
	"pawmart/internal/domain/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockingStore is an in-memory stand-in for the persistence layer that
// honors the profile-lock protocol: Execute hands out repositories sharing
// one store, and AcquireLock blocks until the per-profile mutex is held for
// the rest of the transaction.
type lockingStore struct {
	mu          sync.Mutex
	profile     *entity.Profile
	collections map[entity.CollectionKind]cart.Collection
	products    map[uuid.UUID]*entity.Product
}

func newLockingStore(profile *entity.Profile) *lockingStore {
	return &lockingStore{
		profile:     profile,
		collections: make(map[entity.CollectionKind]cart.Collection),
		products:    make(map[uuid.UUID]*entity.Product),
	}
}

// Execute serializes the whole transaction on the store mutex once the
// callback acquires the lock. The callback runs against repositories bound
// to this store, mirroring how transaction-bound repositories share one
// database connection.
func (s *lockingStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	factory := &lockingStoreFactory{store: s}
	defer factory.unlock()

	return fn(factory)
}

type lockingStoreFactory struct {
	store  *lockingStore
	locked bool
}

func (f *lockingStoreFactory) unlock() {
	if f.locked {
		f.store.mu.Unlock()
		f.locked = false
	}
}

func (f *lockingStoreFactory) ProfileRepo() repository.ProfileRepository   { return &storeProfileRepo{f} }
func (f *lockingStoreFactory) LineItemRepo() repository.LineItemRepository { return &storeLineItemRepo{f} }
func (f *lockingStoreFactory) ProductRepo() repository.ProductRepository   { return &storeProductRepo{f} }
func (f *lockingStoreFactory) PetRepo() repository.PetRepository           { return nil }
func (f *lockingStoreFactory) OrderRepo() repository.OrderRepository       { return nil }

type storeProfileRepo struct{ f *lockingStoreFactory }

func (r *storeProfileRepo) Create(context.Context, *entity.Profile) error {
	return nil
}

func (r *storeProfileRepo) FindBySubject(_ context.Context, subjectID string) (*entity.Profile, error) {
	if r.f.store.profile.SubjectID != subjectID {
		return nil, repository.ErrProfileNotFound
	}

	return r.f.store.profile, nil
}

func (r *storeProfileRepo) AcquireLock(_ context.Context, subjectID string) (*entity.Profile, error) {
	if r.f.store.profile.SubjectID != subjectID {
		return nil, repository.ErrProfileNotFound
	}

	r.f.store.mu.Lock()
	r.f.locked = true

	return r.f.store.profile, nil
}

type storeLineItemRepo struct{ f *lockingStoreFactory }

func (r *storeLineItemRepo) ListCollection(_ context.Context, _ uuid.UUID, kind entity.CollectionKind) (cart.Collection, error) {
	return r.f.store.collections[kind].Clone(), nil
}

func (r *storeLineItemRepo) ReplaceCollection(_ context.Context, _ uuid.UUID, kind entity.CollectionKind, items cart.Collection) error {
	r.f.store.collections[kind] = items.Clone()

	return nil
}

type storeProductRepo struct{ f *lockingStoreFactory }

func (r *storeProductRepo) Create(context.Context, *entity.Product) error { return nil }

func (r *storeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.f.store.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func (r *storeProductRepo) FindAll(context.Context) ([]*entity.Product, error) { return nil, nil }
func (r *storeProductRepo) Update(context.Context, *entity.Product) error      { return nil }
func (r *storeProductRepo) Delete(context.Context, uuid.UUID) error            { return nil }

// Two concurrent unit increments for a target not yet in the cart must both
// survive: the second transaction has to observe the first one's entry
// instead of overwriting it.
func TestCollectionService_ConcurrentIncrements_NoLostUpdate(t *testing.T) {
	subjectID := "firebase-subject-1"
	profile := &entity.Profile{ID: uuid.New(), SubjectID: subjectID, Role: entity.RoleUser}
	product := &entity.Product{ID: uuid.New(), Name: "Chew Toy", Price: 9.99}

	store := newLockingStore(profile)
	store.products[product.ID] = product

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(CollectionServiceParams{
		TxManager: store,
		Logger:    logger,
	})

	ctx := context.Background()
	target := product.Ref()

	const workers = 2

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = service.AdjustQuantity(ctx, subjectID, entity.CollectionKindCart, &usecase.AdjustQuantityInput{
				Target: target,
				Delta:  1,
			})
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	final := store.collections[entity.CollectionKindCart]
	require.Len(t, final, 1)
	assert.Equal(t, 2, final[0].Quantity)
}

// A burst of mixed mutations across both collections must keep every
// collection internally consistent: quantities end up as the sum of applied
// steps and no entry is duplicated.
func TestCollectionService_ConcurrentMixedMutations_Converge(t *testing.T) {
	subjectID := "firebase-subject-1"
	profile := &entity.Profile{ID: uuid.New(), SubjectID: subjectID, Role: entity.RoleUser}
	product := &entity.Product{ID: uuid.New(), Name: "Chew Toy", Price: 9.99}

	store := newLockingStore(profile)
	store.products[product.ID] = product

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCollectionService(CollectionServiceParams{
		TxManager: store,
		Logger:    logger,
	})

	ctx := context.Background()
	target := product.Ref()

	const increments = 8

	var wg sync.WaitGroup
	for range increments {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.AddItem(ctx, subjectID, entity.CollectionKindCart, &usecase.AddItemInput{
				Target:   target,
				Quantity: 1,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final := store.collections[entity.CollectionKindCart]
	require.Len(t, final, 1)
	assert.Equal(t, increments, final[0].Quantity)
}
