package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	mockusecase "pawmart/internal/mocks/usecase"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCollectionTestContext(t *testing.T, method, body, subjectID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/cart", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req = req.WithContext(deliverycontext.WithSubjectID(req.Context(), subjectID))
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCollectionHandler_AddItem_ParsesProductTarget(t *testing.T) {
	uc := mockusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	productID := uuid.New()
	uc.EXPECT().
		AddItem(mock.Anything, "subject-1", entity.CollectionKindCart, &usecase.AddItemInput{
			Target:   entity.TargetRef{Kind: entity.TargetKindProduct, ID: productID},
			Quantity: 2,
		}).
		Return(&usecase.CollectionOutput{Kind: entity.CollectionKindCart}, nil)

	body := `{"productId":"` + productID.String() + `","quantity":2}`
	c, rec := newCollectionTestContext(t, http.MethodPost, body, "subject-1")

	require.NoError(t, h.AddItem(entity.CollectionKindCart)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestCollectionHandler_AddItem_RejectsAmbiguousTarget(t *testing.T) {
	uc := mockusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"productId":"` + uuid.NewString() + `","petId":"` + uuid.NewString() + `"}`
	c, _ := newCollectionTestContext(t, http.MethodPost, body, "subject-1")

	err := h.AddItem(entity.CollectionKindCart)(c)
	require.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCollectionHandler_AddItem_RejectsMalformedID(t *testing.T) {
	uc := mockusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newCollectionTestContext(t, http.MethodPost, `{"productId":"not-a-uuid"}`, "subject-1")

	err := h.AddItem(entity.CollectionKindCart)(c)
	require.ErrorIs(t, err, domainerrors.ErrMalformedID)
}

func TestCollectionHandler_AdjustQuantity_PassesAction(t *testing.T) {
	uc := mockusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	petID := uuid.New()
	uc.EXPECT().
		AdjustQuantity(mock.Anything, "subject-1", entity.CollectionKindWishlist, &usecase.AdjustQuantityInput{
			Target: entity.TargetRef{Kind: entity.TargetKindPet, ID: petID},
			Delta:  -1,
		}).
		Return(&usecase.CollectionOutput{Kind: entity.CollectionKindWishlist}, nil)

	body := `{"petId":"` + petID.String() + `","action":-1}`
	c, rec := newCollectionTestContext(t, http.MethodPut, body, "subject-1")

	require.NoError(t, h.AdjustQuantity(entity.CollectionKindWishlist)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCollectionHandler_RemoveItem_RequiresTarget(t *testing.T) {
	uc := mockusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newCollectionTestContext(t, http.MethodDelete, `{}`, "subject-1")

	err := h.RemoveItem(entity.CollectionKindCart)(c)
	require.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCollectionHandler_GetCollection_UsesContextSubject(t *testing.T) {
	uc := mockusecase.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		GetCollection(mock.Anything, "subject-9", entity.CollectionKindCart).
		Return(&usecase.MaterializedCollectionOutput{Kind: entity.CollectionKindCart}, nil)

	c, rec := newCollectionTestContext(t, http.MethodGet, "", "subject-9")

	require.NoError(t, h.GetCollection(entity.CollectionKindCart)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
