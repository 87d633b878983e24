package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	mockRepo "pawmart/internal/mocks/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	profileRepo *mockRepo.MockProfileRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		ProfileRepo: profileRepo,
		OrderRepo:   orderRepo,
		Logger:      logger,
	})

	return orderServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		orderRepo:   orderRepo,
	}
}

func validOrderInput() *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{
				Target:    entity.TargetRef{Kind: entity.TargetKindProduct, ID: uuid.New()},
				Name:      "Chew Toy",
				Quantity:  2,
				UnitPrice: 9.99,
			},
		},
		TotalAmount:     19.98,
		ShippingAddress: "1 Main St, Springfield",
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := &entity.Profile{ID: uuid.New(), SubjectID: subjectID, Role: entity.RoleUser}
	input := validOrderInput()

	fx.profileRepo.EXPECT().FindBySubject(ctx, subjectID).Return(profile, nil)
	fx.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, subjectID, input)

	require.NoError(t, err)
	assert.Equal(t, profile.ID, order.ProfileID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Chew Toy", order.Items[0].Name)
	assert.InDelta(t, 19.98, order.TotalAmount, 0.001)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := validOrderInput()
	input.Items = nil

	_, err := fx.service.CreateOrder(ctx, "firebase-subject-1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestOrderService_CreateOrder_NonPositiveTotal(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := validOrderInput()
	input.TotalAmount = 0

	_, err := fx.service.CreateOrder(ctx, "firebase-subject-1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestOrderService_CreateOrder_ProfileNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindBySubject(ctx, "unknown-subject").
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.CreateOrder(ctx, "unknown-subject", validOrderInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestOrderService_ListOrders_OwnedOnly(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	subjectID := "firebase-subject-1"
	profile := &entity.Profile{ID: uuid.New(), SubjectID: subjectID, Role: entity.RoleUser}
	orders := []*entity.Order{
		{ID: uuid.New(), ProfileID: profile.ID, TotalAmount: 42},
		{ID: uuid.New(), ProfileID: profile.ID, TotalAmount: 7},
	}

	fx.profileRepo.EXPECT().FindBySubject(ctx, subjectID).Return(profile, nil)
	fx.orderRepo.EXPECT().FindByProfile(ctx, profile.ID).Return(orders, nil)

	listed, err := fx.service.ListOrders(ctx, subjectID)

	require.NoError(t, err)
	assert.Equal(t, orders, listed)
}
