package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a purchase placed by a user at a farm. TotalAmount is stored
// independently of the order's line items and is never recomputed from them;
// OrderValue on the line-item usecase is the derived figure.
type Order struct {
	ID          uuid.UUID       // The unique identifier for the order.
	Status      string          // Free-text status label, e.g. "Pending", "Shipped".
	TotalAmount decimal.Decimal // Stored total, set by the caller.
	CreatedAt   time.Time       // When the order was placed.
	UserID      uuid.UUID       // The user who placed the order.
	FarmID      uuid.UUID       // The farm the order was placed at.
	Delivery    *Delivery       // Optional associated delivery, nil when none scheduled.
	LineItems   []LineItem      // Line items, populated when the order is loaded with details.
}
