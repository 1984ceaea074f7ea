package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// OrderItemInput defines one line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Notes     string
}

// CreateOrderInput defines the data required to place an order. TotalAmount
// is stored as given; it is not derived from the items.
type CreateOrderInput struct {
	Status      string
	TotalAmount decimal.Decimal
	UserID      uuid.UUID
	FarmID      uuid.UUID
	Items       []OrderItemInput
}

// UpdateOrderInput defines the data required to update an order.
type UpdateOrderInput struct {
	Status      string
	TotalAmount decimal.Decimal
	UserID      uuid.UUID
	FarmID      uuid.UUID
}

// OrderUsecase defines the interface for order management. Placing an order
// and changing its status emit events for downstream consumers.
type OrderUsecase interface {
	// CreateOrder stores the order and its line items in one transaction and
	// publishes an OrderCreated event.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order with its delivery and line items.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrder replaces the order's stored fields and publishes an
	// OrderStatusChanged event when the status label changed.
	UpdateOrder(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*entity.Order, error)

	DeleteOrder(ctx context.Context, id uuid.UUID) error

	// ListOrdersByStatus retrieves the orders carrying the given status label.
	ListOrdersByStatus(ctx context.Context, status string) ([]*entity.Order, error)
}
