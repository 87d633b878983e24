// Package firebase verifies bearer credentials against Firebase Auth.
package firebase

import (
	"context"
	"log/slog"

	"pawmart/config"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Verifier implements service.IdentityVerifier on top of the Firebase Admin
// SDK. Token parsing and signature checks are delegated entirely to the SDK.
type Verifier struct {
	client *auth.Client
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewVerifier creates a Firebase-backed identity verifier.
func NewVerifier(params Params) (service.IdentityVerifier, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firebase config is required")
	}

	var opts []option.ClientOption
	if params.Config.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID: params.Config.Firebase.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase auth client")
	}

	return &Verifier{
		client: client,
		logger: params.Logger,
	}, nil
}

// Verify checks the raw bearer token with Firebase and extracts the stable
// subject identifier. A malformed, expired, or revoked token maps to
// service.ErrTokenInvalid; anything else is treated as a provider outage.
func (v *Verifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	if token == "" {
		return nil, service.ErrTokenInvalid
	}

	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		if auth.IsIDTokenExpired(err) || auth.IsIDTokenInvalid(err) || auth.IsIDTokenRevoked(err) {
			v.logger.DebugContext(ctx, "Firebase rejected ID token", slog.String("error", err.Error()))

			return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
		}

		v.logger.ErrorContext(ctx, "Firebase token verification unavailable", slog.String("error", err.Error()))

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, "identity provider unreachable")
	}

	identity := &service.Identity{
		SubjectID: decoded.UID,
	}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
