package impl

import (
	"context"
	"log/slog"
	"strconv"

	"freshmarket/internal/domain/entity"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/domain/service"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// farmService implements the FarmUsecase interface.
type farmService struct {
	farmRepo      repository.FarmRepository
	orderRepo     repository.OrderRepository
	reviewRepo    repository.ReviewRepository
	productRepo   repository.ProductRepository
	stockLinkRepo repository.StockLinkRepository
	cache         service.AggregateCache
	logger        *slog.Logger
}

// FarmServiceParams holds dependencies for FarmService, injected by Fx.
type FarmServiceParams struct {
	fx.In

	FarmRepo      repository.FarmRepository
	OrderRepo     repository.OrderRepository
	ReviewRepo    repository.ReviewRepository
	ProductRepo   repository.ProductRepository
	StockLinkRepo repository.StockLinkRepository
	Cache         service.AggregateCache
	Logger        *slog.Logger
}

// NewFarmService creates a new farm service instance
func NewFarmService(params FarmServiceParams) usecase.FarmUsecase {
	return &farmService{
		farmRepo:      params.FarmRepo,
		orderRepo:     params.OrderRepo,
		reviewRepo:    params.ReviewRepo,
		productRepo:   params.ProductRepo,
		stockLinkRepo: params.StockLinkRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

// CreateFarm creates a new farm
func (s *farmService) CreateFarm(ctx context.Context, input usecase.CreateFarmInput) (*entity.Farm, error) {
	farm := &entity.Farm{
		Name:    input.Name,
		Address: input.Address,
	}

	if err := s.farmRepo.Create(ctx, farm); err != nil {
		return nil, errors.Wrap(err, "failed to create farm")
	}

	return farm, nil
}

// GetFarm retrieves a farm by ID
func (s *farmService) GetFarm(ctx context.Context, id uuid.UUID) (*entity.Farm, error) {
	farm, err := s.farmRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find farm by ID")
	}

	return farm, nil
}

// ListFarms retrieves every farm
func (s *farmService) ListFarms(ctx context.Context) ([]*entity.Farm, error) {
	farms, err := s.farmRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find farms")
	}

	return farms, nil
}

// UpdateFarm updates an existing farm
func (s *farmService) UpdateFarm(ctx context.Context, id uuid.UUID, input usecase.UpdateFarmInput) (*entity.Farm, error) {
	farm := &entity.Farm{
		ID:      id,
		Name:    input.Name,
		Address: input.Address,
	}

	if err := s.farmRepo.Update(ctx, farm); err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to update farm")
	}

	return s.GetFarm(ctx, id)
}

// DeleteFarm removes a farm by ID
func (s *farmService) DeleteFarm(ctx context.Context, id uuid.UUID) error {
	if err := s.farmRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete farm")
	}

	return nil
}

// TotalSales sums the stored total of every order placed at the farm.
// The result is cached; a farm with no orders has zero sales.
func (s *farmService) TotalSales(ctx context.Context, farmID uuid.UUID) (decimal.Decimal, error) {
	key := service.FarmSalesKey(farmID)

	if cached, ok := s.cacheGet(ctx, key); ok {
		if total, err := decimal.NewFromString(cached); err == nil {
			return total, nil
		}
	}

	orders, err := s.orderRepo.FindAllByFarmID(ctx, farmID)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to find orders by farm")
	}

	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.TotalAmount)
	}

	s.cacheSet(ctx, key, total.String())

	return total, nil
}

// AverageRating averages the ratings of the farm's reviews. The result is
// cached; a farm with no reviews rates 0.0.
func (s *farmService) AverageRating(ctx context.Context, farmID uuid.UUID) (float64, error) {
	key := service.FarmRatingKey(farmID)

	if cached, ok := s.cacheGet(ctx, key); ok {
		if rating, err := strconv.ParseFloat(cached, 64); err == nil {
			return rating, nil
		}
	}

	reviews, err := s.reviewRepo.FindAllByFarmID(ctx, farmID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find reviews by farm")
	}

	rating := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		rating = float64(sum) / float64(len(reviews))
	}

	s.cacheSet(ctx, key, strconv.FormatFloat(rating, 'f', -1, 64))

	return rating, nil
}

// ListFarmProducts retrieves the products stocked at a farm
func (s *farmService) ListFarmProducts(ctx context.Context, farmID uuid.UUID) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAllByFarmID(ctx, farmID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by farm")
	}

	return products, nil
}

// ListFarmOrders retrieves the orders placed at a farm
func (s *farmService) ListFarmOrders(ctx context.Context, farmID uuid.UUID) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindAllByFarmID(ctx, farmID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by farm")
	}

	return orders, nil
}

// ListFarmReviews retrieves the reviews written about a farm
func (s *farmService) ListFarmReviews(ctx context.Context, farmID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindAllByFarmID(ctx, farmID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by farm")
	}

	return reviews, nil
}

// cacheGet reads an aggregate from the cache. Cache failures degrade to a
// miss so the aggregate is recomputed from the database.
func (s *farmService) cacheGet(ctx context.Context, key string) (string, bool) {
	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Aggregate cache read failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return "", false
	}

	return value, ok
}

// cacheSet stores an aggregate in the cache. Failures are logged only; the
// computed value is still returned to the caller.
func (s *farmService) cacheSet(ctx context.Context, key, value string) {
	if err := s.cache.Set(ctx, key, value, service.TTLAggregate); err != nil {
		s.logger.Warn("Aggregate cache write failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
