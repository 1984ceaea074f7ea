// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products into a browsable taxonomy.
type Category struct {
	ID          uuid.UUID // The unique identifier for the category.
	Name        string    // Display name, e.g. "Vegetables".
	Description string    // Free-text description of the category.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
