package repository

import (
	"context"
	"errors"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFarmNotFound is a domain-specific error returned when a farm is not found.
var ErrFarmNotFound = errors.New("farm not found")

// FarmRepository defines the standard operations for farm persistence.
type FarmRepository interface {
	// Create persists a new farm entity to the storage.
	Create(ctx context.Context, farm *entity.Farm) error

	// FindByID retrieves a single farm by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error)

	// FindAll retrieves every farm.
	FindAll(ctx context.Context) ([]*entity.Farm, error)

	// Update replaces the stored fields of an existing farm.
	Update(ctx context.Context, farm *entity.Farm) error

	// Delete removes a farm by ID. Owned reviews, stock links and orders are
	// removed by the storage cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
