package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateFarmInput defines the data required to create a farm.
type CreateFarmInput struct {
	Name    string
	Address string
}

// UpdateFarmInput defines the data required to update a farm.
type UpdateFarmInput struct {
	Name    string
	Address string
}

// FarmUsecase defines the interface for farm management and the aggregates
// derived from a farm's relationships.
type FarmUsecase interface {
	CreateFarm(ctx context.Context, input CreateFarmInput) (*entity.Farm, error)
	GetFarm(ctx context.Context, id uuid.UUID) (*entity.Farm, error)
	ListFarms(ctx context.Context) ([]*entity.Farm, error)
	UpdateFarm(ctx context.Context, id uuid.UUID, input UpdateFarmInput) (*entity.Farm, error)
	DeleteFarm(ctx context.Context, id uuid.UUID) error

	// TotalSales sums the stored total of every order placed at the farm.
	// A farm with no orders has zero sales.
	TotalSales(ctx context.Context, farmID uuid.UUID) (decimal.Decimal, error)

	// AverageRating averages the ratings of the farm's reviews, 0.0 when the
	// farm has no reviews.
	AverageRating(ctx context.Context, farmID uuid.UUID) (float64, error)

	// ListFarmProducts retrieves the products stocked at a farm through its
	// stock links.
	ListFarmProducts(ctx context.Context, farmID uuid.UUID) ([]*entity.Product, error)

	// ListFarmOrders retrieves the orders placed at a farm.
	ListFarmOrders(ctx context.Context, farmID uuid.UUID) ([]*entity.Order, error)

	// ListFarmReviews retrieves the reviews written about a farm.
	ListFarmReviews(ctx context.Context, farmID uuid.UUID) ([]*entity.Review, error)
}
