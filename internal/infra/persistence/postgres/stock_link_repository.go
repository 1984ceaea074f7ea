package postgres

import (
	"context"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stockLinkRepository implements the repository.StockLinkRepository interface.
type stockLinkRepository struct {
	db *gorm.DB
}

// NewStockLinkRepository is the constructor for stockLinkRepository.
func NewStockLinkRepository(db *gorm.DB) repository.StockLinkRepository {
	return &stockLinkRepository{
		db: db,
	}
}

// Create persists a new stock link. Duplicate (product, farm) pairs are
// allowed; the stock aggregation sums them as separate rows.
func (repo *stockLinkRepository) Create(ctx context.Context, link *entity.StockLink) error {
	linkM := fromStockLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCreateFailed.WrapMessage("invalid product or farm reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCreateFailed.WrapMessage("missing required stock link information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock link")
	}

	// Update the entity with generated values
	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindByID retrieves a stock link by its unique ID.
func (repo *stockLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StockLink, error) {
	var linkM model.StockLinkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock link by ID")
	}

	return toStockLinkDomain(&linkM), nil
}

// FindAll retrieves every stock link.
func (repo *stockLinkRepository) FindAll(ctx context.Context) ([]*entity.StockLink, error) {
	var linkModels []*model.StockLinkModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stock links")
	}

	return toStockLinkDomainSlice(linkModels), nil
}

// Update replaces the stored fields of an existing stock link.
func (repo *stockLinkRepository) Update(ctx context.Context, link *entity.StockLink) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StockLinkModel{}).
		Where("id = ?", link.ID).
		Updates(map[string]any{
			"product_id": link.ProductID,
			"farm_id":    link.FarmID,
			"quantity":   link.Quantity,
			"notes":      link.Notes,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUpdateFailed.WrapMessage("invalid product or farm reference")
		}

		return errors.Wrap(result.Error, "failed to update stock link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStockLinkNotFound
	}

	return nil
}

// Delete removes a stock link by its ID.
func (repo *stockLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StockLinkModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete stock link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStockLinkNotFound
	}

	return nil
}

// FindAllByFarmID retrieves every stock link held by a farm.
func (repo *stockLinkRepository) FindAllByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.StockLink, error) {
	var linkModels []*model.StockLinkModel

	if err := repo.db.WithContext(ctx).
		Where("farm_id = ?", farmID).
		Order("created_at DESC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stock links by farm")
	}

	return toStockLinkDomainSlice(linkModels), nil
}

// FindAllByProductID retrieves every stock link for a product across farms.
func (repo *stockLinkRepository) FindAllByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.StockLink, error) {
	var linkModels []*model.StockLinkModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stock links by product")
	}

	return toStockLinkDomainSlice(linkModels), nil
}

// --- Mapper Functions ---

// toStockLinkDomain converts a GORM StockLinkModel to a domain StockLink entity.
func toStockLinkDomain(data *model.StockLinkModel) *entity.StockLink {
	if data == nil {
		return nil
	}

	return &entity.StockLink{
		ID:        data.ID,
		ProductID: data.ProductID,
		FarmID:    data.FarmID,
		Quantity:  data.Quantity,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toStockLinkDomainSlice(data []*model.StockLinkModel) []*entity.StockLink {
	links := make([]*entity.StockLink, 0, len(data))
	for _, linkM := range data {
		links = append(links, toStockLinkDomain(linkM))
	}

	return links
}

// fromStockLinkDomain converts a domain StockLink entity to a GORM StockLinkModel.
func fromStockLinkDomain(data *entity.StockLink) *model.StockLinkModel {
	if data == nil {
		return nil
	}

	return &model.StockLinkModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		FarmID:    data.FarmID,
		Quantity:  data.Quantity,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
