package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/delivery/http/response"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/service"
	"pawmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware authenticates requests by verifying the bearer credential
// with the external identity provider. No token is ever minted or parsed
// locally.
type AuthMiddleware struct {
	verifier  service.IdentityVerifier
	profileUc usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, profileUc usecase.ProfileUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:  verifier,
		profileUc: profileUc,
		logger:    logger,
	}
}

// Authenticate validates the bearer token and stores the verified subject on
// the request context for handlers and the service layer to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenInvalid) {
				return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
			}

			// Provider outage, not a bad credential.
			return errors.WithStack(err)
		}

		ctx := c.Request().Context()
		ctx = deliverycontext.WithSubjectID(ctx, identity.SubjectID)
		if identity.Email != "" {
			ctx = deliverycontext.WithSubjectEmail(ctx, identity.Email)
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdmin allows the request through only when the caller's own profile
// carries the admin role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		subjectID := deliverycontext.GetSubjectID(c.Request().Context())
		if subjectID == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}

		role, err := m.profileUc.GetRole(c.Request().Context(), subjectID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrProfileNotFound) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: no profile for caller")
			}

			return errors.WithStack(err)
		}

		if role != entity.RoleAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: require 'admin' role")
		}

		return next(c)
	}
}
