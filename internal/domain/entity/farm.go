package entity

import (
	"time"

	"github.com/google/uuid"
)

// Farm is a seller in the marketplace. A farm is owned by at most one user,
// receives orders, is reviewed by customers and stocks products through
// stock links.
type Farm struct {
	ID        uuid.UUID // The unique identifier for the farm.
	Name      string    // Display name of the farm.
	Address   string    // Physical address, free text.
	CreatedAt time.Time
	UpdatedAt time.Time
}
