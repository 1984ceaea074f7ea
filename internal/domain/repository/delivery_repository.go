package repository

import (
	"context"
	"errors"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeliveryNotFound is a domain-specific error returned when a delivery is not found.
var ErrDeliveryNotFound = errors.New("delivery not found")

// DeliveryRepository defines the standard operations for delivery persistence.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)
	FindAll(ctx context.Context) ([]*entity.Delivery, error)
	Update(ctx context.Context, delivery *entity.Delivery) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAllByStatus retrieves the deliveries carrying the given status label.
	FindAllByStatus(ctx context.Context, status string) ([]*entity.Delivery, error)
}
