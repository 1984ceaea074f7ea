package repository

import (
	"context"
	"errors"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStockLinkNotFound is a domain-specific error returned when a stock link is not found.
var ErrStockLinkNotFound = errors.New("stock link not found")

// StockLinkRepository defines the standard operations for stock link persistence.
type StockLinkRepository interface {
	Create(ctx context.Context, link *entity.StockLink) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StockLink, error)
	FindAll(ctx context.Context) ([]*entity.StockLink, error)
	Update(ctx context.Context, link *entity.StockLink) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAllByFarmID retrieves every stock link held by a farm.
	FindAllByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.StockLink, error)

	// FindAllByProductID retrieves every stock link for a product across farms.
	FindAllByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.StockLink, error)
}
