package handler

import (
	"log/slog"
	"net/http"
	"time"

	"freshmarket/internal/delivery/http/response"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeliveryHandler holds dependencies for delivery-related handlers.
type DeliveryHandler struct {
	uc     usecase.DeliveryUsecase
	logger *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler, injected by Fx.
func NewDeliveryHandler(uc usecase.DeliveryUsecase, logger *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{uc: uc, logger: logger}
}

type createDeliveryRequest struct {
	Status  string    `json:"status" validate:"required"`
	Date    time.Time `json:"date" validate:"required"`
	OrderID uuid.UUID `json:"order_id" validate:"required"`
}

type updateDeliveryRequest struct {
	Status string    `json:"status" validate:"required"`
	Date   time.Time `json:"date" validate:"required"`
}

// CreateDelivery handles the request to schedule a delivery for an order.
// An order carries at most one delivery.
func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	var req createDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	delivery, err := h.uc.CreateDelivery(c.Request().Context(), usecase.CreateDeliveryInput{
		Status:  req.Status,
		Date:    req.Date,
		OrderID: req.OrderID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, delivery, "Delivery scheduled successfully")
}

// GetDelivery handles the request to retrieve one delivery.
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	delivery, err := h.uc.GetDelivery(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery retrieved successfully")
}

// ListDeliveries handles the request to list deliveries, optionally filtered
// by the status query parameter.
func (h *DeliveryHandler) ListDeliveries(c echo.Context) error {
	ctx := c.Request().Context()

	if status := c.QueryParam("status"); status != "" {
		deliveries, err := h.uc.ListDeliveriesByStatus(ctx, status)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, deliveries, "Deliveries retrieved successfully")
	}

	deliveries, err := h.uc.ListDeliveries(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deliveries, "Deliveries retrieved successfully")
}

// UpdateDelivery handles the delivery update request.
func (h *DeliveryHandler) UpdateDelivery(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	delivery, err := h.uc.UpdateDelivery(c.Request().Context(), id, usecase.UpdateDeliveryInput{
		Status: req.Status,
		Date:   req.Date,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery updated successfully")
}

// DeleteDelivery handles the delivery deletion request.
func (h *DeliveryHandler) DeleteDelivery(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteDelivery(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Delivery deleted successfully")
}
