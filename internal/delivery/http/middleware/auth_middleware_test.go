package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/service"
	mockservice "pawmart/internal/mocks/service"
	mockusecase "pawmart/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authTestFixtures struct {
	verifier  *mockservice.MockIdentityVerifier
	profileUc *mockusecase.MockProfileUsecase
	mw        *AuthMiddleware
}

func newAuthTestFixtures(t *testing.T) authTestFixtures {
	t.Helper()

	verifier := mockservice.NewMockIdentityVerifier(t)
	profileUc := mockusecase.NewMockProfileUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authTestFixtures{
		verifier:  verifier,
		profileUc: profileUc,
		mw:        NewAuthMiddleware(verifier, profileUc, logger),
	}
}

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	fx := newAuthTestFixtures(t)
	c, rec := newAuthTestContext("")

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without credentials")
		return nil
	}

	require.NoError(t, fx.mw.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NonBearerHeader(t *testing.T) {
	fx := newAuthTestFixtures(t)
	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without a bearer token")
		return nil
	}

	require.NoError(t, fx.mw.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	fx := newAuthTestFixtures(t)
	c, rec := newAuthTestContext("Bearer expired-token")

	fx.verifier.EXPECT().
		Verify(mock.Anything, "expired-token").
		Return(nil, service.ErrTokenInvalid)

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run for an invalid token")
		return nil
	}

	require.NoError(t, fx.mw.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ProviderOutagePropagates(t *testing.T) {
	fx := newAuthTestFixtures(t)
	c, _ := newAuthTestContext("Bearer some-token")

	fx.verifier.EXPECT().
		Verify(mock.Anything, "some-token").
		Return(nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, "identity provider unreachable"))

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run when verification is unavailable")
		return nil
	}

	err := fx.mw.Authenticate(next)(c)
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestAuthMiddleware_StoresSubjectOnContext(t *testing.T) {
	fx := newAuthTestFixtures(t)
	c, rec := newAuthTestContext("Bearer good-token")

	fx.verifier.EXPECT().
		Verify(mock.Anything, "good-token").
		Return(&service.Identity{SubjectID: "subject-7", Email: "a@b.test"}, nil)

	var gotSubject, gotEmail string
	next := func(c echo.Context) error {
		gotSubject = deliverycontext.GetSubjectID(c.Request().Context())
		gotEmail = deliverycontext.GetSubjectEmail(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, fx.mw.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "subject-7", gotSubject)
	assert.Equal(t, "a@b.test", gotEmail)
}

func TestAuthMiddleware_RequireAdmin_AllowsAdmin(t *testing.T) {
	fx := newAuthTestFixtures(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users/x", nil)
	req = req.WithContext(deliverycontext.WithSubjectID(req.Context(), "subject-admin"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	fx.profileUc.EXPECT().
		GetRole(mock.Anything, "subject-admin").
		Return(entity.RoleAdmin, nil)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, fx.mw.RequireAdmin(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireAdmin_RejectsRegularUser(t *testing.T) {
	fx := newAuthTestFixtures(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users/x", nil)
	req = req.WithContext(deliverycontext.WithSubjectID(req.Context(), "subject-user"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	fx.profileUc.EXPECT().
		GetRole(mock.Anything, "subject-user").
		Return(entity.RoleUser, nil)

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run for a non-admin caller")
		return nil
	}

	require.NoError(t, fx.mw.RequireAdmin(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireAdmin_WithoutAuthentication(t *testing.T) {
	fx := newAuthTestFixtures(t)
	c, rec := newAuthTestContext("")

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without an authenticated subject")
		return nil
	}

	require.NoError(t, fx.mw.RequireAdmin(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
