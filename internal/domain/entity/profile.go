// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the storefront account for one authenticated person. It is keyed
// by the subject id issued by the external identity provider and owns exactly
// one cart and one wishlist for its whole lifetime.
type Profile struct {
	ID        uuid.UUID // Internal record identifier.
	SubjectID string    // Opaque stable id from the identity provider, unique across profiles.
	Name      string    // Display name.
	Email     string    // Contact email.
	Phone     string    // Contact phone number.
	Bio       string    // Free-form description the user writes about themselves.
	PetName   string    // Name of the user's own pet, if any.
	PetType   string    // Species/type of the user's own pet.
	PetAge    int       // Age of the user's own pet in years.
	Role      Role      // Access level; defaults to RoleUser at signup.
	CreatedAt time.Time // Timestamp of when this profile was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// IsAdmin reports whether the profile may manage the catalog.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
