package impl

import (
	"context"
	"testing"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	mockRepo "freshmarket/internal/mocks/repository"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLineItemServiceForTest(t *testing.T) (usecase.LineItemUsecase, *mockRepo.MockLineItemRepository, *mockRepo.MockOrderRepository) {
	t.Helper()

	lineItemRepo := mockRepo.NewMockLineItemRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	svc := NewLineItemService(LineItemServiceParams{
		LineItemRepo: lineItemRepo,
		OrderRepo:    orderRepo,
	})

	return svc, lineItemRepo, orderRepo
}

func TestLineItemService_OrderValue_SumsPriceTimesQuantity(t *testing.T) {
	svc, lineItemRepo, _ := newLineItemServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()

	lineItemRepo.On("FindAllByOrderID", ctx, orderID).Return([]*entity.LineItem{
		{
			ID:       uuid.New(),
			OrderID:  orderID,
			Quantity: 10,
			Product:  &entity.Product{ID: uuid.New(), Price: decimal.RequireFromString("3.00")},
		},
		{
			ID:       uuid.New(),
			OrderID:  orderID,
			Quantity: 20,
			Product:  &entity.Product{ID: uuid.New(), Price: decimal.RequireFromString("2.00")},
		},
	}, nil).Once()

	value, err := svc.OrderValue(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.RequireFromString("70.00")), "got %s", value)
}

func TestLineItemService_OrderValue_NoLineItemsFails(t *testing.T) {
	svc, lineItemRepo, _ := newLineItemServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()

	lineItemRepo.On("FindAllByOrderID", ctx, orderID).Return([]*entity.LineItem{}, nil).Once()

	_, err := svc.OrderValue(ctx, orderID)

	var noItems *domainerrors.NoLineItemsError
	require.True(t, errors.As(err, &noItems))
	assert.Equal(t, orderID, noItems.OrderID)
	assert.Contains(t, err.Error(), orderID.String())
}

func TestLineItemService_OrderValue_MissingProductFails(t *testing.T) {
	svc, lineItemRepo, _ := newLineItemServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	danglingID := uuid.New()

	// One intact line does not rescue the order: the dangling reference wins.
	lineItemRepo.On("FindAllByOrderID", ctx, orderID).Return([]*entity.LineItem{
		{
			ID:       uuid.New(),
			OrderID:  orderID,
			Quantity: 2,
			Product:  &entity.Product{ID: uuid.New(), Price: decimal.RequireFromString("1.00")},
		},
		{
			ID:       danglingID,
			OrderID:  orderID,
			Quantity: 4,
			Product:  nil,
		},
	}, nil).Once()

	_, err := svc.OrderValue(ctx, orderID)

	var missing *domainerrors.MissingProductError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, danglingID, missing.LineItemID)
	assert.Contains(t, err.Error(), danglingID.String())
}

func TestLineItemService_OrderValue_ZeroQuantityLineContributesNothing(t *testing.T) {
	svc, lineItemRepo, _ := newLineItemServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()

	lineItemRepo.On("FindAllByOrderID", ctx, orderID).Return([]*entity.LineItem{
		{
			ID:       uuid.New(),
			OrderID:  orderID,
			Quantity: 0,
			Product:  &entity.Product{ID: uuid.New(), Price: decimal.RequireFromString("9.99")},
		},
	}, nil).Once()

	value, err := svc.OrderValue(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, value.IsZero())
}

func TestLineItemService_CreateLineItem_ChecksOrder(t *testing.T) {
	svc, lineItemRepo, orderRepo := newLineItemServiceForTest(t)

	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()

	orderRepo.On("FindByID", ctx, orderID).
		Return(&entity.Order{ID: orderID}, nil).Once()
	lineItemRepo.On("Create", ctx, &entity.LineItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  3,
	}).Return(nil).Once()

	item, err := svc.CreateLineItem(ctx, usecase.CreateLineItemInput{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, item.OrderID)
}
