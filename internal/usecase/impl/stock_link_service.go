package impl

import (
	"context"

	"freshmarket/internal/domain/entity"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// stockLinkService implements the StockLinkUsecase interface.
type stockLinkService struct {
	stockLinkRepo repository.StockLinkRepository
	productRepo   repository.ProductRepository
	farmRepo      repository.FarmRepository
}

// StockLinkServiceParams holds dependencies for StockLinkService, injected by Fx.
type StockLinkServiceParams struct {
	fx.In

	StockLinkRepo repository.StockLinkRepository
	ProductRepo   repository.ProductRepository
	FarmRepo      repository.FarmRepository
}

// NewStockLinkService creates a new stock link service instance
func NewStockLinkService(params StockLinkServiceParams) usecase.StockLinkUsecase {
	return &stockLinkService{
		stockLinkRepo: params.StockLinkRepo,
		productRepo:   params.ProductRepo,
		farmRepo:      params.FarmRepo,
	}
}

// CreateStockLink links a product to a farm after checking both ends exist.
// Duplicate links for the same pair are allowed.
func (s *stockLinkService) CreateStockLink(ctx context.Context, input usecase.CreateStockLinkInput) (*entity.StockLink, error) {
	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	if _, err := s.farmRepo.FindByID(ctx, input.FarmID); err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find farm by ID")
	}

	link := &entity.StockLink{
		ProductID: input.ProductID,
		FarmID:    input.FarmID,
		Quantity:  input.Quantity,
		Notes:     input.Notes,
	}

	if err := s.stockLinkRepo.Create(ctx, link); err != nil {
		return nil, errors.Wrap(err, "failed to create stock link")
	}

	return link, nil
}

// GetStockLink retrieves a stock link by ID
func (s *stockLinkService) GetStockLink(ctx context.Context, id uuid.UUID) (*entity.StockLink, error) {
	link, err := s.stockLinkRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStockLinkNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find stock link by ID")
	}

	return link, nil
}

// ListStockLinks retrieves every stock link
func (s *stockLinkService) ListStockLinks(ctx context.Context) ([]*entity.StockLink, error) {
	links, err := s.stockLinkRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stock links")
	}

	return links, nil
}

// UpdateStockLink updates an existing stock link
func (s *stockLinkService) UpdateStockLink(ctx context.Context, id uuid.UUID, input usecase.UpdateStockLinkInput) (*entity.StockLink, error) {
	link := &entity.StockLink{
		ID:        id,
		ProductID: input.ProductID,
		FarmID:    input.FarmID,
		Quantity:  input.Quantity,
		Notes:     input.Notes,
	}

	if err := s.stockLinkRepo.Update(ctx, link); err != nil {
		if errors.Is(err, repository.ErrStockLinkNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to update stock link")
	}

	return s.GetStockLink(ctx, id)
}

// DeleteStockLink removes a stock link by ID
func (s *stockLinkService) DeleteStockLink(ctx context.Context, id uuid.UUID) error {
	if err := s.stockLinkRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStockLinkNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete stock link")
	}

	return nil
}

// ListStockLinksByFarm retrieves every stock link held by a farm
func (s *stockLinkService) ListStockLinksByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.StockLink, error) {
	links, err := s.stockLinkRepo.FindAllByFarmID(ctx, farmID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stock links by farm")
	}

	return links, nil
}
