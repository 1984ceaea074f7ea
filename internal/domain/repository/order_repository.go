package repository

import (
	"context"
	"errors"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its delivery and line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	FindAll(ctx context.Context) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order by ID. Its line items and delivery are removed
	// by the storage cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAllByFarmID retrieves the orders placed at a farm.
	FindAllByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.Order, error)

	// FindAllByStatus retrieves the orders carrying the given status label.
	FindAllByStatus(ctx context.Context, status string) ([]*entity.Order, error)
}
