package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freshmarket/internal/delivery/http/validator"
	"freshmarket/internal/domain/entity"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFarmUsecase embeds the interface so only the methods a test exercises
// need to be implemented.
type stubFarmUsecase struct {
	usecase.FarmUsecase

	farm       *entity.Farm
	totalSales decimal.Decimal
	rating     float64
}

func (s *stubFarmUsecase) CreateFarm(ctx context.Context, input usecase.CreateFarmInput) (*entity.Farm, error) {
	return &entity.Farm{ID: uuid.New(), Name: input.Name, Address: input.Address}, nil
}

func (s *stubFarmUsecase) TotalSales(ctx context.Context, farmID uuid.UUID) (decimal.Decimal, error) {
	return s.totalSales, nil
}

func (s *stubFarmUsecase) AverageRating(ctx context.Context, farmID uuid.UUID) (float64, error) {
	return s.rating, nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestFarmHandler_TotalSales(t *testing.T) {
	h := NewFarmHandler(&stubFarmUsecase{
		totalSales: decimal.RequireFromString("15.00"),
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	farmID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/farms/"+farmID.String()+"/sales", "")
	c.SetParamNames("id")
	c.SetParamValues(farmID.String())

	require.NoError(t, h.TotalSales(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_sales")
	assert.Contains(t, rec.Body.String(), "15")
	assert.Contains(t, rec.Body.String(), farmID.String())
}

func TestFarmHandler_TotalSales_InvalidID(t *testing.T) {
	h := NewFarmHandler(&stubFarmUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newTestContext(t, http.MethodGet, "/farms/not-a-uuid/sales", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.TotalSales(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestFarmHandler_AverageRating(t *testing.T) {
	h := NewFarmHandler(&stubFarmUsecase{rating: 4.5}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	farmID := uuid.New()
	c, rec := newTestContext(t, http.MethodGet, "/farms/"+farmID.String()+"/rating", "")
	c.SetParamNames("id")
	c.SetParamValues(farmID.String())

	require.NoError(t, h.AverageRating(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "average_rating")
	assert.Contains(t, rec.Body.String(), "4.5")
}

func TestFarmHandler_CreateFarm(t *testing.T) {
	h := NewFarmHandler(&stubFarmUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/farms", `{"name":"Green Acres","address":"12 Orchard Lane"}`)

	require.NoError(t, h.CreateFarm(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Green Acres")
}

func TestFarmHandler_CreateFarm_MissingName(t *testing.T) {
	h := NewFarmHandler(&stubFarmUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newTestContext(t, http.MethodPost, "/farms", `{"address":"12 Orchard Lane"}`)

	err := h.CreateFarm(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
