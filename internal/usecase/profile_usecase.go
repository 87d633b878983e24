package usecase

import (
	"context"

	"pawmart/internal/domain/cart"
	"pawmart/internal/domain/entity"
)

// CreateProfileInput defines the data required to create a profile at signup.
// Name, Email and Phone are mandatory.
type CreateProfileInput struct {
	Name    string
	Email   string
	Phone   string
	Bio     string
	PetName string
	PetType string
	PetAge  int
}

// ProfileOutput is the full account view: the profile record with its cart
// and wishlist materialized against the current catalog, plus order history.
type ProfileOutput struct {
	Profile  *entity.Profile
	Cart     []cart.MaterializedItem
	Wishlist []cart.MaterializedItem
	Orders   []*entity.Order
}

// ProfileUsecase defines the profile-related business operations.
type ProfileUsecase interface {
	// CreateProfile creates the one profile a subject may own; duplicate
	// signup attempts fail with a conflict.
	CreateProfile(ctx context.Context, subjectID string, input *CreateProfileInput) (*entity.Profile, error)

	// GetProfile loads the subject's own account view.
	GetProfile(ctx context.Context, subjectID string) (*ProfileOutput, error)

	// GetRole returns the role stored for a subject id.
	GetRole(ctx context.Context, subjectID string) (entity.Role, error)
}
