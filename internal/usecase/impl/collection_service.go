// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/domain/cart"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// collectionService implements the CollectionUsecase interface for both
// the cart and the wishlist.
type collectionService struct {
	txManager    repository.TransactionManager
	profileRepo  repository.ProfileRepository
	lineItemRepo repository.LineItemRepository
	productRepo  repository.ProductRepository
	petRepo      repository.PetRepository
	logger       *slog.Logger
}

// CollectionServiceParams holds dependencies for collectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProfileRepo  repository.ProfileRepository
	LineItemRepo repository.LineItemRepository
	ProductRepo  repository.ProductRepository
	PetRepo      repository.PetRepository
	Logger       *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		txManager:    params.TxManager,
		profileRepo:  params.ProfileRepo,
		lineItemRepo: params.LineItemRepo,
		productRepo:  params.ProductRepo,
		petRepo:      params.PetRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem merges the target into the collection, or appends it when absent.
func (srv *collectionService) AddItem(ctx context.Context, subjectID string, kind entity.CollectionKind, input *usecase.AddItemInput) (*usecase.CollectionOutput, error) {
	if err := validateTarget(input.Target); err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	srv.log(ctx).Debug("Adding item to collection",
		slog.Any("collection", kind),
		slog.Any("targetKind", input.Target.Kind),
		slog.Any("targetID", input.Target.ID),
		slog.Int("quantity", quantity))

	return srv.mutate(ctx, subjectID, kind, func(repoFactory repository.RepositoryFactory, items cart.Collection) (cart.Collection, error) {
		if err := srv.resolveTarget(ctx, repoFactory, input.Target); err != nil {
			return nil, err
		}

		next, err := items.Add(input.Target, quantity)
		if err != nil {
			return nil, mapEngineError(err)
		}

		return next, nil
	})
}

// AdjustQuantity applies a unit step to the target's quantity. A positive
// step on an absent target behaves like adding the item with quantity one.
// Stepping an existing entry down to zero removes it from the collection.
func (srv *collectionService) AdjustQuantity(ctx context.Context, subjectID string, kind entity.CollectionKind, input *usecase.AdjustQuantityInput) (*usecase.CollectionOutput, error) {
	if err := validateTarget(input.Target); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Adjusting item quantity",
		slog.Any("collection", kind),
		slog.Any("targetKind", input.Target.Kind),
		slog.Any("targetID", input.Target.ID),
		slog.Int("delta", input.Delta))

	return srv.mutate(ctx, subjectID, kind, func(repoFactory repository.RepositoryFactory, items cart.Collection) (cart.Collection, error) {
		// An increment on an absent target inserts a fresh entry, so the
		// target must still exist in the catalog. Decrements only touch
		// entries already present and stay valid for dangling references,
		// which lets a stale entry be stepped out of the collection.
		if input.Delta > 0 && !items.Contains(input.Target) {
			if err := srv.resolveTarget(ctx, repoFactory, input.Target); err != nil {
				return nil, err
			}
		}

		next, err := items.AdjustQuantity(input.Target, input.Delta)
		if err != nil {
			return nil, mapEngineError(err)
		}

		return next, nil
	})
}

// RemoveItem deletes the target's entry regardless of quantity. Removal does
// not consult the catalog, so entries whose target has since been deleted can
// still be cleared.
func (srv *collectionService) RemoveItem(ctx context.Context, subjectID string, kind entity.CollectionKind, input *usecase.RemoveItemInput) (*usecase.CollectionOutput, error) {
	if err := validateTarget(input.Target); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Removing item from collection",
		slog.Any("collection", kind),
		slog.Any("targetKind", input.Target.Kind),
		slog.Any("targetID", input.Target.ID))

	return srv.mutate(ctx, subjectID, kind, func(_ repository.RepositoryFactory, items cart.Collection) (cart.Collection, error) {
		next, err := items.Remove(input.Target)
		if err != nil {
			return nil, mapEngineError(err)
		}

		return next, nil
	})
}

// GetCollection resolves every entry against the catalog and returns the
// resolvable ones. Entries whose target no longer exists are skipped in the
// view but left untouched in storage.
func (srv *collectionService) GetCollection(ctx context.Context, subjectID string, kind entity.CollectionKind) (*usecase.MaterializedCollectionOutput, error) {
	profile, err := srv.findProfile(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	items, err := srv.lineItemRepo.ListCollection(ctx, profile.ID, kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collection")
	}

	resolver := newCatalogResolver(srv.productRepo, srv.petRepo)

	materialized, err := resolver.Materialize(ctx, items)
	if err != nil {
		srv.log(ctx).Error("Failed to materialize collection", slog.Any("collection", kind), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to materialize collection")
	}

	return &usecase.MaterializedCollectionOutput{Kind: kind, Items: materialized}, nil
}

// mutate runs a read-modify-write cycle over the collection inside a single
// transaction. The profile row is locked first so concurrent mutations for
// the same user serialize instead of overwriting each other.
func (srv *collectionService) mutate(
	ctx context.Context,
	subjectID string,
	kind entity.CollectionKind,
	apply func(repository.RepositoryFactory, cart.Collection) (cart.Collection, error),
) (*usecase.CollectionOutput, error) {
	var result cart.Collection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.ProfileRepo().AcquireLock(ctx, subjectID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found for collection mutation")
			}

			return errors.Wrap(err, "failed to lock profile row")
		}

		items, err := repoFactory.LineItemRepo().ListCollection(ctx, profile.ID, kind)
		if err != nil {
			return errors.Wrap(err, "failed to list collection")
		}

		next, err := apply(repoFactory, items)
		if err != nil {
			return err
		}

		if err := repoFactory.LineItemRepo().ReplaceCollection(ctx, profile.ID, kind, next); err != nil {
			return errors.Wrap(err, "failed to persist collection")
		}

		result = next

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Collection mutation failed", slog.Any("collection", kind), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute collection mutation transaction")
	}

	return &usecase.CollectionOutput{Kind: kind, Items: result}, nil
}

// resolveTarget checks that the target still exists in the catalog before a
// new entry is inserted for it.
func (srv *collectionService) resolveTarget(ctx context.Context, repoFactory repository.RepositoryFactory, target entity.TargetRef) error {
	switch target.Kind {
	case entity.TargetKindProduct:
		if _, err := repoFactory.ProductRepo().FindByID(ctx, target.ID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "target product does not exist")
			}

			return errors.Wrap(err, "failed to resolve target product")
		}
	case entity.TargetKindPet:
		if _, err := repoFactory.PetRepo().FindByID(ctx, target.ID); err != nil {
			if errors.Is(err, repository.ErrPetNotFound) {
				return errors.Wrap(domainerrors.ErrPetNotFound, "target pet does not exist")
			}

			return errors.Wrap(err, "failed to resolve target pet")
		}
	default:
		return errors.Wrap(domainerrors.ErrValidation, "unknown target kind")
	}

	return nil
}

func (srv *collectionService) findProfile(ctx context.Context, subjectID string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

func validateTarget(target entity.TargetRef) error {
	if !target.Kind.IsValid() {
		return errors.Wrap(domainerrors.ErrValidation, "target kind must be product or pet")
	}

	return nil
}

// mapEngineError translates collection engine sentinels into domain errors.
func mapEngineError(err error) error {
	switch {
	case errors.Is(err, cart.ErrItemNotInCollection):
		return errors.Wrap(domainerrors.ErrItemNotInCollection, "item not present in collection")
	case errors.Is(err, cart.ErrInvalidDelta):
		return errors.Wrap(domainerrors.ErrValidation, "quantity step must be +1 or -1")
	case errors.Is(err, cart.ErrInvalidQuantity):
		return errors.Wrap(domainerrors.ErrValidation, "quantity must be at least one")
	default:
		return err
	}
}
