package handler

import (
	"log/slog"
	"net/http"
	"time"

	"freshmarket/internal/delivery/http/response"
	"freshmarket/internal/domain/entity"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Username string      `json:"username" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	FarmID   *uuid.UUID  `json:"farm_id"`
	RoleIDs  []uuid.UUID `json:"role_ids"` // nil leaves role grants unchanged
}

// userResponse is the user shape returned to clients. The password hash
// never leaves the server.
type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FarmID    *uuid.UUID `json:"farm_id,omitempty"`
	Roles     []string   `json:"roles"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FarmID:    user.FarmID,
		Roles:     entity.RoleNames(user.Roles),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"user":          toUserResponse(output.User),
	}, "Login successful")
}

// GetProfile handles the request for the authenticated user's own account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// GetUser handles the request to retrieve one user.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User retrieved successfully")
}

// ListUsers handles the request to list all users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]userResponse, len(users))
	for i, user := range users {
		out[i] = toUserResponse(user)
	}

	return response.Success(c, http.StatusOK, out, "Users retrieved successfully")
}

// UpdateUser handles the user update request. Supplying role_ids resets the
// user's role grants; omitting it leaves them alone.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	var roles []entity.Role
	if req.RoleIDs != nil {
		roles = make([]entity.Role, len(req.RoleIDs))
		for i, roleID := range req.RoleIDs {
			roles[i] = entity.Role{ID: roleID}
		}
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, usecase.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		FarmID:   req.FarmID,
		Roles:    roles,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "User updated successfully")
}

// DeleteUser handles the user deletion request.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// OrdersForUser handles the request for a user's order history. An unknown
// user yields an empty list.
func (h *UserHandler) OrdersForUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.OrdersForUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "User orders retrieved successfully")
}

// ReviewsForUser handles the request for the reviews a user has authored.
// An unknown user yields an empty list.
func (h *UserHandler) ReviewsForUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	reviews, err := h.uc.ReviewsForUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "User reviews retrieved successfully")
}
