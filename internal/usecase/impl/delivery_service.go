package impl

import (
	"context"

	"freshmarket/internal/domain/entity"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	deliveryRepo repository.DeliveryRepository
	orderRepo    repository.OrderRepository
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	DeliveryRepo repository.DeliveryRepository
	OrderRepo    repository.OrderRepository
}

// NewDeliveryService creates a new delivery service instance
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		deliveryRepo: params.DeliveryRepo,
		orderRepo:    params.OrderRepo,
	}
}

// CreateDelivery schedules a delivery for an existing order
func (s *deliveryService) CreateDelivery(ctx context.Context, input usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	if _, err := s.orderRepo.FindByID(ctx, input.OrderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	delivery := &entity.Delivery{
		Status:  input.Status,
		Date:    input.Date,
		OrderID: input.OrderID,
	}

	if err := s.deliveryRepo.Create(ctx, delivery); err != nil {
		return nil, errors.Wrap(err, "failed to create delivery")
	}

	return delivery, nil
}

// GetDelivery retrieves a delivery by ID
func (s *deliveryService) GetDelivery(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	delivery, err := s.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find delivery by ID")
	}

	return delivery, nil
}

// ListDeliveries retrieves every delivery
func (s *deliveryService) ListDeliveries(ctx context.Context) ([]*entity.Delivery, error) {
	deliveries, err := s.deliveryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries")
	}

	return deliveries, nil
}

// UpdateDelivery updates an existing delivery
func (s *deliveryService) UpdateDelivery(ctx context.Context, id uuid.UUID, input usecase.UpdateDeliveryInput) (*entity.Delivery, error) {
	delivery := &entity.Delivery{
		ID:     id,
		Status: input.Status,
		Date:   input.Date,
	}

	if err := s.deliveryRepo.Update(ctx, delivery); err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to update delivery")
	}

	return s.GetDelivery(ctx, id)
}

// DeleteDelivery removes a delivery by ID
func (s *deliveryService) DeleteDelivery(ctx context.Context, id uuid.UUID) error {
	if err := s.deliveryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete delivery")
	}

	return nil
}

// ListDeliveriesByStatus retrieves the deliveries carrying the given status
func (s *deliveryService) ListDeliveriesByStatus(ctx context.Context, status string) ([]*entity.Delivery, error) {
	deliveries, err := s.deliveryRepo.FindAllByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by status")
	}

	return deliveries, nil
}
