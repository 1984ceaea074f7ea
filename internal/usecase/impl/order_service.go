package impl

import (
	"context"
	"log/slog"
	"time"

	"freshmarket/internal/domain/entity"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/domain/service"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// CreateOrder stores the order and its line items in one transaction and
// publishes an OrderCreated event. TotalAmount is stored as given.
func (s *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		Status:      input.Status,
		TotalAmount: input.TotalAmount,
		UserID:      input.UserID,
		FarmID:      input.FarmID,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		lineItemRepo := repoFactory.LineItemRepo()

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, item := range input.Items {
			lineItem := &entity.LineItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Notes:     item.Notes,
			}

			if err := lineItemRepo.Create(ctx, lineItem); err != nil {
				return errors.Wrap(err, "failed to create line item")
			}

			order.LineItems = append(order.LineItems, *lineItem)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, service.EventOrderCreated, order)

	return order, nil
}

// GetOrder retrieves an order with its delivery and line items
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return order, nil
}

// ListOrders retrieves every order
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return orders, nil
}

// UpdateOrder replaces the order's stored fields and publishes an
// OrderStatusChanged event when the status label changed.
func (s *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, input usecase.UpdateOrderInput) (*entity.Order, error) {
	var statusChanged bool
	order := &entity.Order{
		ID:          id,
		Status:      input.Status,
		TotalAmount: input.TotalAmount,
		UserID:      input.UserID,
		FarmID:      input.FarmID,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		existing, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return err
			}

			return errors.Wrap(err, "failed to find order by ID")
		}

		statusChanged = existing.Status != input.Status

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if statusChanged {
		s.publishEvent(ctx, service.EventOrderStatusChanged, order)
	}

	return s.GetOrder(ctx, id)
}

// DeleteOrder removes an order by ID
func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// ListOrdersByStatus retrieves the orders carrying the given status label
func (s *orderService) ListOrdersByStatus(ctx context.Context, status string) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindAllByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by status")
	}

	return orders, nil
}

// publishEvent emits an order lifecycle event. The write already committed,
// so a broker failure is logged rather than surfaced to the caller.
func (s *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		EventID:     uuid.New().String(),
		EventType:   eventType,
		OccurredAt:  time.Now(),
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		FarmID:      order.FarmID.String(),
		Status:      order.Status,
		TotalAmount: order.TotalAmount.String(),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("Order event publish failed",
			slog.String("event_type", eventType),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
