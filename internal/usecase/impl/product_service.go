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
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	stockLinkRepo repository.StockLinkRepository
	cache         service.AggregateCache
	logger        *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	CategoryRepo  repository.CategoryRepository
	StockLinkRepo repository.StockLinkRepository
	Cache         service.AggregateCache
	Logger        *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:   params.ProductRepo,
		categoryRepo:  params.CategoryRepo,
		stockLinkRepo: params.StockLinkRepo,
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

// CreateProduct creates a new product after checking its category exists
func (s *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return product, nil
}

// ListProducts retrieves every product
func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return products, nil
}

// UpdateProduct updates an existing product
func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct removes a product by ID
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// TotalStock sums the quantity of every stock link for the product across
// all farms. The result is cached; duplicate links count separately and a
// product with no links has zero stock.
func (s *productService) TotalStock(ctx context.Context, productID uuid.UUID) (int, error) {
	key := service.ProductStockKey(productID)

	if cached, ok := s.cacheGet(ctx, key); ok {
		if total, err := strconv.Atoi(cached); err == nil {
			return total, nil
		}
	}

	links, err := s.stockLinkRepo.FindAllByProductID(ctx, productID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find stock links by product")
	}

	total := 0
	for _, link := range links {
		total += link.Quantity
	}

	s.cacheSet(ctx, key, strconv.Itoa(total))

	return total, nil
}

// ListProductStockLinks retrieves the stock links for a product
func (s *productService) ListProductStockLinks(ctx context.Context, productID uuid.UUID) ([]*entity.StockLink, error) {
	links, err := s.stockLinkRepo.FindAllByProductID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stock links by product")
	}

	return links, nil
}

func (s *productService) cacheGet(ctx context.Context, key string) (string, bool) {
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

func (s *productService) cacheSet(ctx context.Context, key, value string) {
	if err := s.cache.Set(ctx, key, value, service.TTLAggregate); err != nil {
		s.logger.Warn("Aggregate cache write failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
