package handler

import (
	"log/slog"
	"net/http"

	"freshmarket/internal/delivery/http/response"
	"freshmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RoleHandler holds dependencies for role-related handlers.
type RoleHandler struct {
	uc     usecase.RoleUsecase
	logger *slog.Logger
}

// NewRoleHandler is the constructor for RoleHandler, injected by Fx.
func NewRoleHandler(uc usecase.RoleUsecase, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{uc: uc, logger: logger}
}

type roleRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateRole handles the role creation request.
func (h *RoleHandler) CreateRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	role, err := h.uc.CreateRole(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, role, "Role created successfully")
}

// GetRole handles the request to retrieve one role.
func (h *RoleHandler) GetRole(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	role, err := h.uc.GetRole(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, role, "Role retrieved successfully")
}

// ListRoles handles the request to list roles, optionally narrowed to one
// role by the name query parameter.
func (h *RoleHandler) ListRoles(c echo.Context) error {
	ctx := c.Request().Context()

	if name := c.QueryParam("name"); name != "" {
		role, err := h.uc.GetRoleByName(ctx, name)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, role, "Role retrieved successfully")
	}

	roles, err := h.uc.ListRoles(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, roles, "Roles retrieved successfully")
}

// UpdateRole handles the role rename request.
func (h *RoleHandler) UpdateRole(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	role, err := h.uc.UpdateRole(c.Request().Context(), id, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, role, "Role updated successfully")
}

// DeleteRole handles the role deletion request. A role still granted to
// users cannot be removed.
func (h *RoleHandler) DeleteRole(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRole(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role deleted successfully")
}
