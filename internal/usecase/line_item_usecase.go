package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateLineItemInput defines the data required to add a line to an order.
type CreateLineItemInput struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Notes     string
}

// UpdateLineItemInput defines the data required to update a line item.
type UpdateLineItemInput struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Notes     string
}

// LineItemUsecase defines the interface for line item management and the
// order value derived from an order's lines.
type LineItemUsecase interface {
	CreateLineItem(ctx context.Context, input CreateLineItemInput) (*entity.LineItem, error)
	GetLineItem(ctx context.Context, id uuid.UUID) (*entity.LineItem, error)
	ListLineItems(ctx context.Context) ([]*entity.LineItem, error)
	UpdateLineItem(ctx context.Context, id uuid.UUID, input UpdateLineItemInput) (*entity.LineItem, error)
	DeleteLineItem(ctx context.Context, id uuid.UUID) error

	// ListLineItemsByOrder retrieves an order's line items with product
	// references resolved.
	ListLineItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.LineItem, error)

	// OrderValue computes the current worth of an order as the sum over its
	// line items of product price times quantity. Unlike the stored
	// TotalAmount this is strict: an order with no line items fails, and so
	// does any line whose product no longer exists.
	OrderValue(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error)
}
