package impl

import (
	"context"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// lineItemService implements the LineItemUsecase interface.
type lineItemService struct {
	lineItemRepo repository.LineItemRepository
	orderRepo    repository.OrderRepository
}

// LineItemServiceParams holds dependencies for LineItemService, injected by Fx.
type LineItemServiceParams struct {
	fx.In

	LineItemRepo repository.LineItemRepository
	OrderRepo    repository.OrderRepository
}

// NewLineItemService creates a new line item service instance
func NewLineItemService(params LineItemServiceParams) usecase.LineItemUsecase {
	return &lineItemService{
		lineItemRepo: params.LineItemRepo,
		orderRepo:    params.OrderRepo,
	}
}

// CreateLineItem adds a line to an existing order
func (s *lineItemService) CreateLineItem(ctx context.Context, input usecase.CreateLineItemInput) (*entity.LineItem, error) {
	if _, err := s.orderRepo.FindByID(ctx, input.OrderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	item := &entity.LineItem{
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Notes:     input.Notes,
	}

	if err := s.lineItemRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create line item")
	}

	return item, nil
}

// GetLineItem retrieves a line item by ID
func (s *lineItemService) GetLineItem(ctx context.Context, id uuid.UUID) (*entity.LineItem, error) {
	item, err := s.lineItemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLineItemNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find line item by ID")
	}

	return item, nil
}

// ListLineItems retrieves every line item
func (s *lineItemService) ListLineItems(ctx context.Context) ([]*entity.LineItem, error) {
	items, err := s.lineItemRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find line items")
	}

	return items, nil
}

// UpdateLineItem updates an existing line item
func (s *lineItemService) UpdateLineItem(ctx context.Context, id uuid.UUID, input usecase.UpdateLineItemInput) (*entity.LineItem, error) {
	item := &entity.LineItem{
		ID:        id,
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Notes:     input.Notes,
	}

	if err := s.lineItemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrLineItemNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to update line item")
	}

	return s.GetLineItem(ctx, id)
}

// DeleteLineItem removes a line item by ID
func (s *lineItemService) DeleteLineItem(ctx context.Context, id uuid.UUID) error {
	if err := s.lineItemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLineItemNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete line item")
	}

	return nil
}

// ListLineItemsByOrder retrieves an order's line items
func (s *lineItemService) ListLineItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.LineItem, error) {
	items, err := s.lineItemRepo.FindAllByOrderID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find line items by order")
	}

	return items, nil
}

// OrderValue computes the current worth of an order as the sum over its line
// items of product price times quantity. An order without line items fails,
// and so does any line whose product row no longer exists, even when the
// remaining lines are intact.
func (s *lineItemService) OrderValue(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	items, err := s.lineItemRepo.FindAllByOrderID(ctx, orderID)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to find line items by order")
	}

	if len(items) == 0 {
		return decimal.Zero, &domainerrors.NoLineItemsError{OrderID: orderID}
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			return decimal.Zero, &domainerrors.MissingProductError{LineItemID: item.ID}
		}

		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total, nil
}
