package usecase

import (
	"context"
	"time"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateDeliveryInput defines the data required to schedule a delivery.
type CreateDeliveryInput struct {
	Status  string
	Date    time.Time
	OrderID uuid.UUID
}

// UpdateDeliveryInput defines the data required to update a delivery.
type UpdateDeliveryInput struct {
	Status string
	Date   time.Time
}

// DeliveryUsecase defines the interface for delivery management.
type DeliveryUsecase interface {
	CreateDelivery(ctx context.Context, input CreateDeliveryInput) (*entity.Delivery, error)
	GetDelivery(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)
	ListDeliveries(ctx context.Context) ([]*entity.Delivery, error)
	UpdateDelivery(ctx context.Context, id uuid.UUID, input UpdateDeliveryInput) (*entity.Delivery, error)
	DeleteDelivery(ctx context.Context, id uuid.UUID) error

	// ListDeliveriesByStatus retrieves the deliveries carrying the given
	// status label.
	ListDeliveriesByStatus(ctx context.Context, status string) ([]*entity.Delivery, error)
}
