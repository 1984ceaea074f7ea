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

// StockLinkHandler holds dependencies for stock-link handlers.
type StockLinkHandler struct {
	uc     usecase.StockLinkUsecase
	logger *slog.Logger
}

// NewStockLinkHandler is the constructor for StockLinkHandler, injected by Fx.
func NewStockLinkHandler(uc usecase.StockLinkUsecase, logger *slog.Logger) *StockLinkHandler {
	return &StockLinkHandler{uc: uc, logger: logger}
}

type stockLinkRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	FarmID    uuid.UUID `json:"farm_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=0"`
	Notes     string    `json:"notes"`
}

// CreateStockLink handles the request to record product stock at a farm.
func (h *StockLinkHandler) CreateStockLink(c echo.Context) error {
	var req stockLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock link input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	link, err := h.uc.CreateStockLink(c.Request().Context(), usecase.CreateStockLinkInput{
		ProductID: req.ProductID,
		FarmID:    req.FarmID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Stock link created successfully")
}

// GetStockLink handles the request to retrieve one stock link.
func (h *StockLinkHandler) GetStockLink(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	link, err := h.uc.GetStockLink(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, link, "Stock link retrieved successfully")
}

// ListStockLinks handles the request to list all stock links.
func (h *StockLinkHandler) ListStockLinks(c echo.Context) error {
	links, err := h.uc.ListStockLinks(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, links, "Stock links retrieved successfully")
}

// UpdateStockLink handles the stock link update request.
func (h *StockLinkHandler) UpdateStockLink(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req stockLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock link input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	link, err := h.uc.UpdateStockLink(c.Request().Context(), id, usecase.UpdateStockLinkInput{
		ProductID: req.ProductID,
		FarmID:    req.FarmID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, link, "Stock link updated successfully")
}

// DeleteStockLink handles the stock link deletion request.
func (h *StockLinkHandler) DeleteStockLink(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteStockLink(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Stock link deleted successfully")
}

// ListStockLinksByFarm handles the request for every stock link held by a
// farm.
func (h *StockLinkHandler) ListStockLinksByFarm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	links, err := h.uc.ListStockLinksByFarm(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, links, "Farm stock links retrieved successfully")
}
