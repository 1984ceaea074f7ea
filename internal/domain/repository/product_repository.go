package repository

import (
	"context"
	"errors"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAllByCategoryID retrieves the products belonging to a category.
	FindAllByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Product, error)

	// FindAllByFarmID retrieves the products stocked at a farm, resolved
	// through its stock links.
	FindAllByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.Product, error)
}
