package entity

import (
	"time"

	"github.com/google/uuid"
)

// Delivery tracks the shipment of a single order. Status is a free-text
// label set directly by callers; there is no transition table.
type Delivery struct {
	ID        uuid.UUID // The unique identifier for the delivery.
	Status    string    // Free-text status label, e.g. "In Transit".
	Date      time.Time // Scheduled or actual delivery date.
	OrderID   uuid.UUID // The order being delivered.
	CreatedAt time.Time
	UpdatedAt time.Time
}
