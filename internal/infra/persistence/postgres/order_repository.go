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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order. TotalAmount is stored exactly as given.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).
		Omit("Delivery", "LineItems").
		Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCreateFailed.WrapMessage("invalid user or farm reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCreateFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByID retrieves an order with its delivery and line items preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Delivery").
		Preload("LineItems").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindAll retrieves every order, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return toOrderDomainSlice(orderModels), nil
}

// Update replaces the stored fields of an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":       order.Status,
			"total_amount": order.TotalAmount,
			"user_id":      order.UserID,
			"farm_id":      order.FarmID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUpdateFailed.WrapMessage("invalid user or farm reference")
		}

		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order by its ID. Line items and the delivery are removed
// by the database cascade.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindAllByFarmID retrieves the orders placed at a farm, newest first.
func (repo *orderRepository) FindAllByFarmID(ctx context.Context, farmID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("farm_id = ?", farmID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by farm")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindAllByStatus retrieves the orders carrying the given status label.
func (repo *orderRepository) FindAllByStatus(ctx context.Context, status string) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by status")
	}

	return toOrderDomainSlice(orderModels), nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
// Delivery and line items are carried over only when preloaded.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:          data.ID,
		Status:      data.Status,
		TotalAmount: data.TotalAmount,
		CreatedAt:   data.CreatedAt,
		UserID:      data.UserID,
		FarmID:      data.FarmID,
		Delivery:    toDeliveryDomain(data.Delivery),
	}

	if len(data.LineItems) > 0 {
		order.LineItems = make([]entity.LineItem, 0, len(data.LineItems))
		for i := range data.LineItems {
			order.LineItems = append(order.LineItems, *toLineItemDomain(&data.LineItems[i]))
		}
	}

	return order
}

func toOrderDomainSlice(data []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for _, orderM := range data {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:          data.ID,
		Status:      data.Status,
		TotalAmount: data.TotalAmount,
		CreatedAt:   data.CreatedAt,
		UserID:      data.UserID,
		FarmID:      data.FarmID,
	}
}
