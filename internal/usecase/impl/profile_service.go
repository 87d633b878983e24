package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo  repository.ProfileRepository
	lineItemRepo repository.LineItemRepository
	productRepo  repository.ProductRepository
	petRepo      repository.PetRepository
	orderRepo    repository.OrderRepository
	logger       *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo  repository.ProfileRepository
	LineItemRepo repository.LineItemRepository
	ProductRepo  repository.ProductRepository
	PetRepo      repository.PetRepository
	OrderRepo    repository.OrderRepository
	Logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:  params.ProfileRepo,
		lineItemRepo: params.LineItemRepo,
		productRepo:  params.ProductRepo,
		petRepo:      params.PetRepo,
		orderRepo:    params.OrderRepo,
		logger:       params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile creates the single profile a subject may own. A second signup
// attempt for the same subject fails with a conflict instead of silently
// reusing the existing record.
func (srv *profileService) CreateProfile(ctx context.Context, subjectID string, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating profile", slog.String("email", input.Email))

	profile := &entity.Profile{
		SubjectID: subjectID,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Bio:       input.Bio,
		PetName:   input.PetName,
		PetType:   input.PetType,
		PetAge:    input.PetAge,
		Role:      entity.RoleUser,
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileAlreadyExists) {
			srv.log(ctx).Warn("Profile already exists for subject", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrProfileAlreadyExists, "profile already registered for this account")
		}

		srv.log(ctx).Error("Failed to create profile", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Debug("Profile created", slog.Any("profileID", profile.ID))

	return profile, nil
}

// GetProfile loads the subject's account view: the profile record, its cart
// and wishlist materialized against the current catalog, and order history.
func (srv *profileService) GetProfile(ctx context.Context, subjectID string) (*usecase.ProfileOutput, error) {
	profile, err := srv.profileRepo.FindBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	resolver := newCatalogResolver(srv.productRepo, srv.petRepo)

	cartItems, err := srv.lineItemRepo.ListCollection(ctx, profile.ID, entity.CollectionKindCart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	materializedCart, err := resolver.Materialize(ctx, cartItems)
	if err != nil {
		return nil, errors.Wrap(err, "failed to materialize cart")
	}

	wishlistItems, err := srv.lineItemRepo.ListCollection(ctx, profile.ID, entity.CollectionKindWishlist)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	materializedWishlist, err := resolver.Materialize(ctx, wishlistItems)
	if err != nil {
		return nil, errors.Wrap(err, "failed to materialize wishlist")
	}

	orders, err := srv.orderRepo.FindByProfile(ctx, profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.ProfileOutput{
		Profile:  profile,
		Cart:     materializedCart,
		Wishlist: materializedWishlist,
		Orders:   orders,
	}, nil
}

// GetRole returns the role stored for a subject id.
func (srv *profileService) GetRole(ctx context.Context, subjectID string) (entity.Role, error) {
	profile, err := srv.profileRepo.FindBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return "", errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return "", errors.Wrap(err, "failed to find profile")
	}

	return profile.Role, nil
}

func validateProfileInput(input *usecase.CreateProfileInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return errors.Wrap(domainerrors.ErrValidation, "name is required")
	case strings.TrimSpace(input.Email) == "":
		return errors.Wrap(domainerrors.ErrValidation, "email is required")
	case strings.TrimSpace(input.Phone) == "":
		return errors.Wrap(domainerrors.ErrValidation, "phone is required")
	}

	return nil
}
