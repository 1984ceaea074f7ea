package handler

import (
	"log/slog"
	"net/http"

	"freshmarket/internal/delivery/http/response"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type orderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=0"`
	Notes     string    `json:"notes"`
}

type createOrderRequest struct {
	Status      string             `json:"status" validate:"required"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	UserID      uuid.UUID          `json:"user_id" validate:"required"`
	FarmID      uuid.UUID          `json:"farm_id" validate:"required"`
	Items       []orderItemRequest `json:"items" validate:"dive"`
}

type updateOrderRequest struct {
	Status      string          `json:"status" validate:"required"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	UserID      uuid.UUID       `json:"user_id" validate:"required"`
	FarmID      uuid.UUID       `json:"farm_id" validate:"required"`
}

// CreateOrder handles the order placement request. The order and its line
// items are stored in one transaction.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		}
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
		UserID:      req.UserID,
		FarmID:      req.FarmID,
		Items:       items,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetOrder handles the request to retrieve one order with its delivery and
// line items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrders handles the request to list orders, optionally filtered by the
// status query parameter.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	if status := c.QueryParam("status"); status != "" {
		orders, err := h.uc.ListOrdersByStatus(ctx, status)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
	}

	orders, err := h.uc.ListOrders(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateOrder handles the order update request. A status change publishes an
// OrderStatusChanged event downstream.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), id, usecase.UpdateOrderInput{
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
		UserID:      req.UserID,
		FarmID:      req.FarmID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}

// DeleteOrder handles the order deletion request.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}
