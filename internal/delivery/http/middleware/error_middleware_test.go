package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_EmptyOrderValue(t *testing.T) {
	orderID := uuid.New()
	rec := handleError(t, &domainerrors.NoLineItemsError{OrderID: orderID})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORDER_HAS_NO_LINE_ITEMS")
	assert.Contains(t, rec.Body.String(), orderID.String())
}

func TestHandleHTTPError_DanglingProductReference(t *testing.T) {
	lineItemID := uuid.New()
	rec := handleError(t, &domainerrors.MissingProductError{LineItemID: lineItemID})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "LINE_ITEM_PRODUCT_MISSING")
	assert.Contains(t, rec.Body.String(), lineItemID.String())
}

func TestHandleHTTPError_EmailTaken(t *testing.T) {
	rec := handleError(t, domainerrors.ErrEmailTaken)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
}

func TestHandleHTTPError_WrappedRepositoryMiss(t *testing.T) {
	rec := handleError(t, errors.Wrap(repository.ErrFarmNotFound, "failed to find farm by ID"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "farm not found")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid resource ID"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid resource ID")
}

func TestHandleHTTPError_UnknownErrorIsInternal(t *testing.T) {
	rec := handleError(t, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
