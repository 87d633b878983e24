package impl

import (
	"context"

	"pawmart/internal/domain/cart"
	"pawmart/internal/domain/entity"
	"pawmart/internal/domain/repository"

	"github.com/pkg/errors"
)

// catalogResolver resolves collection entries against the catalog
// repositories so a stored collection can be turned into a view.
type catalogResolver struct {
	productRepo repository.ProductRepository
	petRepo     repository.PetRepository
}

func newCatalogResolver(productRepo repository.ProductRepository, petRepo repository.PetRepository) *catalogResolver {
	return &catalogResolver{productRepo: productRepo, petRepo: petRepo}
}

// Materialize resolves each entry and drops the ones whose target no longer
// exists. Catalog lookups that fail for any reason other than absence abort
// the whole materialization.
func (r *catalogResolver) Materialize(ctx context.Context, items cart.Collection) ([]cart.MaterializedItem, error) {
	resolved := make(map[entity.TargetRef]*entity.CatalogItem, len(items))

	for _, item := range items {
		catalogItem, err := r.resolve(ctx, item.Target)
		if err != nil {
			return nil, err
		}
		if catalogItem != nil {
			resolved[item.Target] = catalogItem
		}
	}

	return items.Materialize(func(target entity.TargetRef) (*entity.CatalogItem, bool) {
		catalogItem, ok := resolved[target]

		return catalogItem, ok
	}), nil
}

// resolve returns nil without error when the target is absent from the catalog.
func (r *catalogResolver) resolve(ctx context.Context, target entity.TargetRef) (*entity.CatalogItem, error) {
	switch target.Kind {
	case entity.TargetKindProduct:
		product, err := r.productRepo.FindByID(ctx, target.ID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, nil
			}

			return nil, errors.Wrap(err, "failed to resolve product")
		}

		return entity.FromProduct(product), nil
	case entity.TargetKindPet:
		pet, err := r.petRepo.FindByID(ctx, target.ID)
		if err != nil {
			if errors.Is(err, repository.ErrPetNotFound) {
				return nil, nil
			}

			return nil, errors.Wrap(err, "failed to resolve pet")
		}

		return entity.FromPet(pet), nil
	default:
		return nil, nil
	}
}
