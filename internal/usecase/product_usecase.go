package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  uuid.UUID
}

// UpdateProductInput defines the data required to update a product.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  uuid.UUID
}

// ProductUsecase defines the interface for product management and the stock
// aggregate derived from a product's stock links.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// TotalStock sums the quantity of every stock link for the product across
	// all farms. Duplicate links for the same farm count separately; a
	// product with no stock links has zero stock.
	TotalStock(ctx context.Context, productID uuid.UUID) (int, error)

	// ListProductStockLinks retrieves the stock links recording where the
	// product is held.
	ListProductStockLinks(ctx context.Context, productID uuid.UUID) ([]*entity.StockLink, error)
}
