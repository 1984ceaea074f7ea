package handler

import (
	"log/slog"
	"net/http"

	"freshmarket/internal/delivery/http/response"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LineItemHandler holds dependencies for line-item handlers, including the
// order value aggregate computed from an order's lines.
type LineItemHandler struct {
	uc     usecase.LineItemUsecase
	logger *slog.Logger
}

// NewLineItemHandler is the constructor for LineItemHandler, injected by Fx.
func NewLineItemHandler(uc usecase.LineItemUsecase, logger *slog.Logger) *LineItemHandler {
	return &LineItemHandler{uc: uc, logger: logger}
}

type lineItemRequest struct {
	OrderID   uuid.UUID `json:"order_id" validate:"required"`
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=0"`
	Notes     string    `json:"notes"`
}

// CreateLineItem handles the request to add a line to an existing order.
func (h *LineItemHandler) CreateLineItem(c echo.Context) error {
	var req lineItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid line item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.CreateLineItem(c.Request().Context(), usecase.CreateLineItemInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Line item created successfully")
}

// GetLineItem handles the request to retrieve one line item.
func (h *LineItemHandler) GetLineItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	item, err := h.uc.GetLineItem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Line item retrieved successfully")
}

// ListLineItems handles the request to list all line items.
func (h *LineItemHandler) ListLineItems(c echo.Context) error {
	items, err := h.uc.ListLineItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Line items retrieved successfully")
}

// UpdateLineItem handles the line item update request.
func (h *LineItemHandler) UpdateLineItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req lineItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid line item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.uc.UpdateLineItem(c.Request().Context(), id, usecase.UpdateLineItemInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Line item updated successfully")
}

// DeleteLineItem handles the line item deletion request.
func (h *LineItemHandler) DeleteLineItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteLineItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Line item deleted successfully")
}

// ListLineItemsByOrder handles the request for an order's line items with
// product references resolved.
func (h *LineItemHandler) ListLineItemsByOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListLineItemsByOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Order line items retrieved successfully")
}

// OrderValue handles the request for the current worth of an order, summed
// from its line items at current product prices.
func (h *LineItemHandler) OrderValue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	value, err := h.uc.OrderValue(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"order_id":    id,
		"order_value": value,
	}, "Order value computed successfully")
}
