// Package service defines interfaces for external collaborators the
// application depends on but does not implement.
package service

import (
	"context"
	"errors"
)

// ErrTokenInvalid is returned when a credential fails verification.
var ErrTokenInvalid = errors.New("credential is invalid or expired")

// Identity is the result of verifying a bearer credential with the external
// identity provider.
type Identity struct {
	SubjectID string // Opaque stable id for the authenticated person.
	Email     string // Email claim, when the provider supplies one.
}

// IdentityVerifier validates a bearer credential and yields a stable subject
// identifier. Verification is delegated entirely to the external provider;
// the application never mints or parses credentials itself.
type IdentityVerifier interface {
	// Verify checks the raw bearer token. It returns ErrTokenInvalid for a
	// bad credential and a wrapped transport error when the provider cannot
	// be reached.
	Verify(ctx context.Context, token string) (*Identity, error)
}
