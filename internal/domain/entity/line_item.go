package entity

import (
	"time"

	"github.com/google/uuid"
)

// LineItem records that a product appears in an order with a quantity.
type LineItem struct {
	ID        uuid.UUID // The unique identifier for the line item.
	OrderID   uuid.UUID // The order this line belongs to.
	ProductID uuid.UUID // The ordered product.
	Quantity  int       // Ordered units, never negative.
	Notes     string    // Free-text notes.
	Product   *Product  // Resolved product reference. Nil when the product row is gone.
	CreatedAt time.Time
	UpdatedAt time.Time
}
