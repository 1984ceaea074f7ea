package impl

import (
	"context"
	"testing"

	"freshmarket/internal/domain/entity"
	"freshmarket/internal/domain/service"
	mockRepo "freshmarket/internal/mocks/repository"
	mockSvc "freshmarket/internal/mocks/service"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	orderRepo    *mockRepo.MockOrderRepository
	lineItemRepo *mockRepo.MockLineItemRepository
	publisher    *mockSvc.MockEventPublisher
}

func newOrderServiceForTest(t *testing.T) (usecase.OrderUsecase, orderServiceMocks) {
	t.Helper()

	m := orderServiceMocks{
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		lineItemRepo: mockRepo.NewMockLineItemRepository(t),
		publisher:    &mockSvc.MockEventPublisher{},
	}

	txManager := &mockRepo.MockTransactionManager{
		Factory: &mockRepo.MockRepositoryFactory{
			Orders:    m.orderRepo,
			LineItems: m.lineItemRepo,
		},
	}

	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: m.orderRepo,
		Publisher: m.publisher,
		Logger:    discardLogger(),
	})

	return svc, m
}

func TestOrderService_CreateOrder_PublishesCreatedEvent(t *testing.T) {
	svc, m := newOrderServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	farmID := uuid.New()
	productID := uuid.New()

	m.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	m.lineItemRepo.On("Create", ctx, mock.AnythingOfType("*entity.LineItem")).Return(nil).Twice()

	order, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		Status:      "Pending",
		TotalAmount: decimal.RequireFromString("30.00"),
		UserID:      userID,
		FarmID:      farmID,
		Items: []usecase.OrderItemInput{
			{ProductID: productID, Quantity: 2},
			{ProductID: uuid.New(), Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Len(t, order.LineItems, 2)

	require.Len(t, m.publisher.Events, 1)
	event := m.publisher.Events[0]
	assert.Equal(t, service.EventOrderCreated, event.EventType)
	assert.Equal(t, order.ID.String(), event.OrderID)
	assert.Equal(t, "Pending", event.Status)
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	svc, m := newOrderServiceForTest(t)
	m.publisher.Err = assert.AnError

	ctx := context.Background()

	m.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()

	_, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		Status:      "Pending",
		TotalAmount: decimal.Zero,
		UserID:      uuid.New(),
		FarmID:      uuid.New(),
	})
	require.NoError(t, err)
}

func TestOrderService_UpdateOrder_StatusChangePublishesEvent(t *testing.T) {
	svc, m := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	existing := &entity.Order{
		ID:          orderID,
		Status:      "Pending",
		TotalAmount: decimal.RequireFromString("10.00"),
		UserID:      uuid.New(),
		FarmID:      uuid.New(),
	}
	updated := &entity.Order{
		ID:          orderID,
		Status:      "Shipped",
		TotalAmount: existing.TotalAmount,
		UserID:      existing.UserID,
		FarmID:      existing.FarmID,
	}

	m.orderRepo.On("FindByID", ctx, orderID).Return(existing, nil).Once()
	m.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
	m.orderRepo.On("FindByID", ctx, orderID).Return(updated, nil).Once()

	out, err := svc.UpdateOrder(ctx, orderID, usecase.UpdateOrderInput{
		Status:      "Shipped",
		TotalAmount: existing.TotalAmount,
		UserID:      existing.UserID,
		FarmID:      existing.FarmID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Shipped", out.Status)

	require.Len(t, m.publisher.Events, 1)
	assert.Equal(t, service.EventOrderStatusChanged, m.publisher.Events[0].EventType)
	assert.Equal(t, "Shipped", m.publisher.Events[0].Status)
}

func TestOrderService_UpdateOrder_SameStatusPublishesNothing(t *testing.T) {
	svc, m := newOrderServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	existing := &entity.Order{
		ID:          orderID,
		Status:      "Pending",
		TotalAmount: decimal.Zero,
		UserID:      uuid.New(),
		FarmID:      uuid.New(),
	}

	m.orderRepo.On("FindByID", ctx, orderID).Return(existing, nil).Twice()
	m.orderRepo.On("Update", ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()

	_, err := svc.UpdateOrder(ctx, orderID, usecase.UpdateOrderInput{
		Status:      "Pending",
		TotalAmount: existing.TotalAmount,
		UserID:      existing.UserID,
		FarmID:      existing.FarmID,
	})
	require.NoError(t, err)
	assert.Empty(t, m.publisher.Events)
}

func TestOrderService_CreateOrder_StoresTotalAsGiven(t *testing.T) {
	svc, m := newOrderServiceForTest(t)

	ctx := context.Background()

	// The stored total is whatever the caller sent, independent of the items.
	m.orderRepo.On("Create", ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.TotalAmount.Equal(decimal.RequireFromString("999.99"))
	})).Return(nil).Once()
	m.lineItemRepo.On("Create", ctx, mock.AnythingOfType("*entity.LineItem")).Return(nil).Once()

	_, err := svc.CreateOrder(ctx, usecase.CreateOrderInput{
		Status:      "Pending",
		TotalAmount: decimal.RequireFromString("999.99"),
		UserID:      uuid.New(),
		FarmID:      uuid.New(),
		Items:       []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.NoError(t, err)
}
