package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateStockLinkInput defines the data required to link a product to a farm.
type CreateStockLinkInput struct {
	ProductID uuid.UUID
	FarmID    uuid.UUID
	Quantity  int
	Notes     string
}

// UpdateStockLinkInput defines the data required to update a stock link.
type UpdateStockLinkInput struct {
	ProductID uuid.UUID
	FarmID    uuid.UUID
	Quantity  int
	Notes     string
}

// StockLinkUsecase defines the interface for stock link management.
type StockLinkUsecase interface {
	CreateStockLink(ctx context.Context, input CreateStockLinkInput) (*entity.StockLink, error)
	GetStockLink(ctx context.Context, id uuid.UUID) (*entity.StockLink, error)
	ListStockLinks(ctx context.Context) ([]*entity.StockLink, error)
	UpdateStockLink(ctx context.Context, id uuid.UUID, input UpdateStockLinkInput) (*entity.StockLink, error)
	DeleteStockLink(ctx context.Context, id uuid.UUID) error

	// ListStockLinksByFarm retrieves every stock link held by a farm.
	ListStockLinksByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.StockLink, error)
}
