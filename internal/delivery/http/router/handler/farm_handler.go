package handler

import (
	"log/slog"
	"net/http"

	"freshmarket/internal/delivery/http/response"
	"freshmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FarmHandler holds dependencies for farm-related handlers, including the
// aggregate endpoints derived from a farm's orders and reviews.
type FarmHandler struct {
	uc     usecase.FarmUsecase
	logger *slog.Logger
}

// NewFarmHandler is the constructor for FarmHandler, injected by Fx.
func NewFarmHandler(uc usecase.FarmUsecase, logger *slog.Logger) *FarmHandler {
	return &FarmHandler{uc: uc, logger: logger}
}

type farmRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// CreateFarm handles the farm creation request.
func (h *FarmHandler) CreateFarm(c echo.Context) error {
	var req farmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid farm input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	farm, err := h.uc.CreateFarm(c.Request().Context(), usecase.CreateFarmInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, farm, "Farm created successfully")
}

// GetFarm handles the request to retrieve one farm.
func (h *FarmHandler) GetFarm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	farm, err := h.uc.GetFarm(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, farm, "Farm retrieved successfully")
}

// ListFarms handles the request to list all farms.
func (h *FarmHandler) ListFarms(c echo.Context) error {
	farms, err := h.uc.ListFarms(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, farms, "Farms retrieved successfully")
}

// UpdateFarm handles the farm update request.
func (h *FarmHandler) UpdateFarm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req farmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid farm input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	farm, err := h.uc.UpdateFarm(c.Request().Context(), id, usecase.UpdateFarmInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, farm, "Farm updated successfully")
}

// DeleteFarm handles the farm deletion request.
func (h *FarmHandler) DeleteFarm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteFarm(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Farm deleted successfully")
}

// TotalSales handles the request for a farm's accumulated sales.
func (h *FarmHandler) TotalSales(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	total, err := h.uc.TotalSales(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"farm_id":     id,
		"total_sales": total,
	}, "Farm sales computed successfully")
}

// AverageRating handles the request for a farm's average review rating.
func (h *FarmHandler) AverageRating(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	rating, err := h.uc.AverageRating(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"farm_id":        id,
		"average_rating": rating,
	}, "Farm rating computed successfully")
}

// ListFarmProducts handles the request for the products stocked at a farm.
func (h *FarmHandler) ListFarmProducts(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	products, err := h.uc.ListFarmProducts(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Farm products retrieved successfully")
}

// ListFarmOrders handles the request for the orders placed at a farm.
func (h *FarmHandler) ListFarmOrders(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListFarmOrders(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Farm orders retrieved successfully")
}

// ListFarmReviews handles the request for the reviews written about a farm.
func (h *FarmHandler) ListFarmReviews(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListFarmReviews(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Farm reviews retrieved successfully")
}
