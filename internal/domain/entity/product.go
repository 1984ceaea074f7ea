package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item. It belongs to exactly one category; its
// per-farm availability is tracked by stock links and its appearances in
// orders by line items.
type Product struct {
	ID          uuid.UUID       // The unique identifier for the product.
	Name        string          // Display name of the product.
	Description string          // Free-text description.
	Price       decimal.Decimal // Unit price, always positive.
	CategoryID  uuid.UUID       // The category this product belongs to.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
