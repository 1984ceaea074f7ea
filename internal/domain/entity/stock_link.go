package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockLink records that a product is stocked at a farm with a quantity.
// The model does not enforce uniqueness of the (product, farm) pair;
// duplicate rows are summed as-is by the stock aggregation.
type StockLink struct {
	ID        uuid.UUID // The unique identifier for the stock link.
	ProductID uuid.UUID // The stocked product.
	FarmID    uuid.UUID // The farm holding the stock.
	Quantity  int       // Units on hand, never negative.
	Notes     string    // Free-text notes, e.g. storage conditions.
	CreatedAt time.Time
	UpdatedAt time.Time
}
