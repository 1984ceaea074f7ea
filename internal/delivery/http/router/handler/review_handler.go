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

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

type createReviewRequest struct {
	Rating  int       `json:"rating" validate:"required"`
	Content string    `json:"content"`
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	FarmID  uuid.UUID `json:"farm_id" validate:"required"`
}

type updateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required"`
	Content string `json:"content"`
}

// CreateReview handles the request to review a farm. Rating bounds are
// enforced by the use case.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		Rating:  req.Rating,
		Content: req.Content,
		UserID:  req.UserID,
		FarmID:  req.FarmID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// GetReview handles the request to retrieve one review.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	review, err := h.uc.GetReview(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review retrieved successfully")
}

// ListReviews handles the request to list reviews, optionally narrowed to
// one farm by the farm_id query parameter.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	if farmParam := c.QueryParam("farm_id"); farmParam != "" {
		farmID, err := uuid.Parse(farmParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid farm ID")
		}

		reviews, err := h.uc.ListReviewsByFarm(ctx, farmID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
	}

	reviews, err := h.uc.ListReviews(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// UpdateReview handles the review update request.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), id, usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// DeleteReview handles the review deletion request.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteReview(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}
