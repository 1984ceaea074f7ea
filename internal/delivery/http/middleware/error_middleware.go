package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// notFoundSentinels are the repository errors that surface as 404 when a
// lookup reaches the delivery layer unmapped.
var notFoundSentinels = []error{
	repository.ErrCategoryNotFound,
	repository.ErrFarmNotFound,
	repository.ErrProductNotFound,
	repository.ErrStockLinkNotFound,
	repository.ErrOrderNotFound,
	repository.ErrLineItemNotFound,
	repository.ErrReviewNotFound,
	repository.ErrUserNotFound,
	repository.ErrRoleNotFound,
	repository.ErrDeliveryNotFound,
}

// ErrorMiddleware is the centralized error handler for the HTTP delivery.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own status and business code.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode(), domainerrors.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// Repository lookups that missed map to 404.
	for _, sentinel := range notFoundSentinels {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, domainerrors.Response{
				Success: false,
				Code:    http.StatusNotFound,
				Message: sentinel.Error(),
				Error: &domainerrors.ErrorInfo{
					Code:    "NOT_FOUND",
					Details: err.Error(),
				},
			})

			return
		}
	}

	// Errors raised by echo itself, e.g. validation and routing failures.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		c.JSON(httpErr.Code, domainerrors.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Everything else is an internal fault. Log it and return a generic error.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	c.JSON(http.StatusInternalServerError, domainerrors.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &domainerrors.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Details: err.Error(),
		},
	})
}
