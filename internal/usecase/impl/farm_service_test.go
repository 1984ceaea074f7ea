package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"freshmarket/internal/domain/entity"
	"freshmarket/internal/domain/service"
	mockRepo "freshmarket/internal/mocks/repository"
	mockSvc "freshmarket/internal/mocks/service"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFarmServiceForTest(t *testing.T) (usecase.FarmUsecase, *mockRepo.MockFarmRepository, *mockRepo.MockOrderRepository, *mockRepo.MockReviewRepository, *mockSvc.MockAggregateCache) {
	t.Helper()

	farmRepo := mockRepo.NewMockFarmRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	cache := mockSvc.NewMockAggregateCache()

	svc := NewFarmService(FarmServiceParams{
		FarmRepo:      farmRepo,
		OrderRepo:     orderRepo,
		ReviewRepo:    reviewRepo,
		ProductRepo:   mockRepo.NewMockProductRepository(t),
		StockLinkRepo: mockRepo.NewMockStockLinkRepository(t),
		Cache:         cache,
		Logger:        discardLogger(),
	})

	return svc, farmRepo, orderRepo, reviewRepo, cache
}

func TestFarmService_TotalSales_SumsOrderTotals(t *testing.T) {
	svc, _, orderRepo, _, _ := newFarmServiceForTest(t)

	ctx := context.Background()
	farmID := uuid.New()

	orderRepo.On("FindAllByFarmID", ctx, farmID).Return([]*entity.Order{
		{ID: uuid.New(), FarmID: farmID, TotalAmount: decimal.RequireFromString("10.50")},
		{ID: uuid.New(), FarmID: farmID, TotalAmount: decimal.RequireFromString("4.25")},
		{ID: uuid.New(), FarmID: farmID, TotalAmount: decimal.RequireFromString("0.25")},
	}, nil).Once()

	total, err := svc.TotalSales(ctx, farmID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("15.00")), "got %s", total)
}

func TestFarmService_TotalSales_NoOrdersIsZero(t *testing.T) {
	svc, _, orderRepo, _, _ := newFarmServiceForTest(t)

	ctx := context.Background()
	farmID := uuid.New()

	orderRepo.On("FindAllByFarmID", ctx, farmID).Return([]*entity.Order{}, nil).Once()

	total, err := svc.TotalSales(ctx, farmID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestFarmService_TotalSales_SecondCallServedFromCache(t *testing.T) {
	svc, _, orderRepo, _, cache := newFarmServiceForTest(t)

	ctx := context.Background()
	farmID := uuid.New()

	// Single expectation: the repository must be hit exactly once.
	orderRepo.On("FindAllByFarmID", ctx, farmID).Return([]*entity.Order{
		{ID: uuid.New(), FarmID: farmID, TotalAmount: decimal.RequireFromString("7.00")},
	}, nil).Once()

	first, err := svc.TotalSales(ctx, farmID)
	require.NoError(t, err)

	second, err := svc.TotalSales(ctx, farmID)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))

	cached, err := decimal.NewFromString(cache.Values[service.FarmSalesKey(farmID)])
	require.NoError(t, err)
	assert.True(t, cached.Equal(first))
}

func TestFarmService_AverageRating_AveragesReviews(t *testing.T) {
	svc, _, _, reviewRepo, _ := newFarmServiceForTest(t)

	ctx := context.Background()
	farmID := uuid.New()

	reviewRepo.On("FindAllByFarmID", ctx, farmID).Return([]*entity.Review{
		{ID: uuid.New(), FarmID: farmID, Rating: 4},
		{ID: uuid.New(), FarmID: farmID, Rating: 5},
		{ID: uuid.New(), FarmID: farmID, Rating: 3},
	}, nil).Once()

	rating, err := svc.AverageRating(ctx, farmID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, rating, 1e-9)
}

func TestFarmService_AverageRating_NoReviewsIsZero(t *testing.T) {
	svc, _, _, reviewRepo, _ := newFarmServiceForTest(t)

	ctx := context.Background()
	farmID := uuid.New()

	reviewRepo.On("FindAllByFarmID", ctx, farmID).Return([]*entity.Review{}, nil).Once()

	rating, err := svc.AverageRating(ctx, farmID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rating)
}

func TestFarmService_AverageRating_FractionalAverage(t *testing.T) {
	svc, _, _, reviewRepo, _ := newFarmServiceForTest(t)

	ctx := context.Background()
	farmID := uuid.New()

	reviewRepo.On("FindAllByFarmID", ctx, farmID).Return([]*entity.Review{
		{ID: uuid.New(), FarmID: farmID, Rating: 4},
		{ID: uuid.New(), FarmID: farmID, Rating: 5},
	}, nil).Once()

	rating, err := svc.AverageRating(ctx, farmID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, rating, 1e-9)
}

func TestFarmService_CreateFarm(t *testing.T) {
	svc, farmRepo, _, _, _ := newFarmServiceForTest(t)

	ctx := context.Background()

	farmRepo.On("Create", ctx, &entity.Farm{
		Name:    "Green Acres",
		Address: "12 Orchard Lane",
	}).Return(nil).Once()

	farm, err := svc.CreateFarm(ctx, usecase.CreateFarmInput{
		Name:    "Green Acres",
		Address: "12 Orchard Lane",
	})
	require.NoError(t, err)
	assert.Equal(t, "Green Acres", farm.Name)
}
