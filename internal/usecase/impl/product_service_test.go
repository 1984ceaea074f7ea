package impl

import (
	"context"
	"testing"

	"freshmarket/internal/domain/entity"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/domain/service"
	mockRepo "freshmarket/internal/mocks/repository"
	mockSvc "freshmarket/internal/mocks/service"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductServiceForTest(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository, *mockRepo.MockCategoryRepository, *mockRepo.MockStockLinkRepository, *mockSvc.MockAggregateCache) {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	stockLinkRepo := mockRepo.NewMockStockLinkRepository(t)
	cache := mockSvc.NewMockAggregateCache()

	svc := NewProductService(ProductServiceParams{
		ProductRepo:   productRepo,
		CategoryRepo:  categoryRepo,
		StockLinkRepo: stockLinkRepo,
		Cache:         cache,
		Logger:        discardLogger(),
	})

	return svc, productRepo, categoryRepo, stockLinkRepo, cache
}

func TestProductService_TotalStock_SumsAllLinks(t *testing.T) {
	svc, _, _, stockLinkRepo, _ := newProductServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()
	farmID := uuid.New()

	// Two links for the same farm still count separately.
	stockLinkRepo.On("FindAllByProductID", ctx, productID).Return([]*entity.StockLink{
		{ID: uuid.New(), ProductID: productID, FarmID: farmID, Quantity: 10},
		{ID: uuid.New(), ProductID: productID, FarmID: farmID, Quantity: 5},
		{ID: uuid.New(), ProductID: productID, FarmID: uuid.New(), Quantity: 7},
	}, nil).Once()

	total, err := svc.TotalStock(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 22, total)
}

func TestProductService_TotalStock_NoLinksIsZero(t *testing.T) {
	svc, _, _, stockLinkRepo, _ := newProductServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()

	stockLinkRepo.On("FindAllByProductID", ctx, productID).Return([]*entity.StockLink{}, nil).Once()

	total, err := svc.TotalStock(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestProductService_TotalStock_SecondCallServedFromCache(t *testing.T) {
	svc, _, _, stockLinkRepo, cache := newProductServiceForTest(t)

	ctx := context.Background()
	productID := uuid.New()

	stockLinkRepo.On("FindAllByProductID", ctx, productID).Return([]*entity.StockLink{
		{ID: uuid.New(), ProductID: productID, FarmID: uuid.New(), Quantity: 3},
	}, nil).Once()

	first, err := svc.TotalStock(ctx, productID)
	require.NoError(t, err)

	second, err := svc.TotalStock(ctx, productID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "3", cache.Values[service.ProductStockKey(productID)])
}

func TestProductService_CreateProduct_ChecksCategory(t *testing.T) {
	svc, productRepo, categoryRepo, _, _ := newProductServiceForTest(t)

	ctx := context.Background()
	categoryID := uuid.New()

	categoryRepo.On("FindByID", ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Fruit"}, nil).Once()
	productRepo.On("Create", ctx, &entity.Product{
		Name:       "Apples",
		Price:      decimal.RequireFromString("2.50"),
		CategoryID: categoryID,
	}).Return(nil).Once()

	product, err := svc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:       "Apples",
		Price:      decimal.RequireFromString("2.50"),
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Apples", product.Name)
}

func TestProductService_CreateProduct_UnknownCategoryFails(t *testing.T) {
	svc, _, categoryRepo, _, _ := newProductServiceForTest(t)

	ctx := context.Background()
	categoryID := uuid.New()

	categoryRepo.On("FindByID", ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound).Once()

	_, err := svc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:       "Apples",
		CategoryID: categoryID,
	})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}
