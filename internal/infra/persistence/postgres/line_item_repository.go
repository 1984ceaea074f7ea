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

// lineItemRepository implements the repository.LineItemRepository interface.
type lineItemRepository struct {
	db *gorm.DB
}

// NewLineItemRepository is the constructor for lineItemRepository.
func NewLineItemRepository(db *gorm.DB) repository.LineItemRepository {
	return &lineItemRepository{
		db: db,
	}
}

// Create persists a new line item.
func (repo *lineItemRepository) Create(ctx context.Context, item *entity.LineItem) error {
	itemM := fromLineItemDomain(item)

	if err := repo.db.WithContext(ctx).
		Omit("Product").
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCreateFailed.WrapMessage("invalid order reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCreateFailed.WrapMessage("missing required line item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create line item")
	}

	// Update the entity with generated values
	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves a line item with its product reference resolved.
// The Product field stays nil when the product row no longer exists.
func (repo *lineItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LineItem, error) {
	var itemM model.LineItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLineItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find line item by ID")
	}

	return toLineItemDomain(&itemM), nil
}

// FindAll retrieves every line item.
func (repo *lineItemRepository) FindAll(ctx context.Context) ([]*entity.LineItem, error) {
	var itemModels []*model.LineItemModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find line items")
	}

	return toLineItemDomainSlice(itemModels), nil
}

// Update replaces the stored fields of an existing line item.
func (repo *lineItemRepository) Update(ctx context.Context, item *entity.LineItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LineItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"order_id":   item.OrderID,
			"product_id": item.ProductID,
			"quantity":   item.Quantity,
			"notes":      item.Notes,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUpdateFailed.WrapMessage("invalid order reference")
		}

		return errors.Wrap(result.Error, "failed to update line item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLineItemNotFound
	}

	return nil
}

// Delete removes a line item by its ID.
func (repo *lineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LineItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete line item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLineItemNotFound
	}

	return nil
}

// FindAllByOrderID retrieves an order's line items with each line's product
// reference resolved. A line whose product row is gone comes back with a nil
// Product; callers decide what that means.
func (repo *lineItemRepository) FindAllByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.LineItem, error) {
	var itemModels []*model.LineItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find line items by order")
	}

	return toLineItemDomainSlice(itemModels), nil
}

// --- Mapper Functions ---

// toLineItemDomain converts a GORM LineItemModel to a domain LineItem entity.
func toLineItemDomain(data *model.LineItemModel) *entity.LineItem {
	if data == nil {
		return nil
	}

	return &entity.LineItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Notes:     data.Notes,
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toLineItemDomainSlice(data []*model.LineItemModel) []*entity.LineItem {
	items := make([]*entity.LineItem, 0, len(data))
	for _, itemM := range data {
		items = append(items, toLineItemDomain(itemM))
	}

	return items
}

// fromLineItemDomain converts a domain LineItem entity to a GORM LineItemModel.
func fromLineItemDomain(data *entity.LineItem) *model.LineItemModel {
	if data == nil {
		return nil
	}

	return &model.LineItemModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
