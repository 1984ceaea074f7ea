package repository

import (
	"context"
	"errors"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLineItemNotFound is a domain-specific error returned when a line item is not found.
var ErrLineItemNotFound = errors.New("line item not found")

// LineItemRepository defines the standard operations for line item persistence.
type LineItemRepository interface {
	Create(ctx context.Context, item *entity.LineItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LineItem, error)
	FindAll(ctx context.Context) ([]*entity.LineItem, error)
	Update(ctx context.Context, item *entity.LineItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAllByOrderID retrieves an order's line items with each line's
	// product reference resolved. A line whose product row no longer exists
	// is returned with a nil Product; the order-value computation turns that
	// into a missing-reference failure.
	FindAllByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.LineItem, error)
}
