// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pawmart/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileAlreadyExists is returned when a second profile is created for the
// same subject id. Duplicate signups are rejected, never merged.
var ErrProfileAlreadyExists = errors.New("profile already exists")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProfileRepository interface {
	// Create persists a new profile. It fails with ErrProfileAlreadyExists
	// when a profile for the same subject id is already stored.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindBySubject retrieves the profile owned by the given subject id.
	FindBySubject(ctx context.Context, subjectID string) (*entity.Profile, error)

	// AcquireLock takes a row-level lock on the profile for the remainder of
	// the surrounding transaction. Every read-modify-write cycle over the
	// profile's line-item collections must hold this lock so concurrent
	// mutations of the same cart serialize instead of losing updates.
	AcquireLock(ctx context.Context, subjectID string) (*entity.Profile, error)
}
