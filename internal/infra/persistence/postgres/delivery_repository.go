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

// deliveryRepository implements the repository.DeliveryRepository interface.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

// Create persists a new delivery. One delivery per order; a second insert
// for the same order conflicts.
func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order already has a delivery")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCreateFailed.WrapMessage("invalid order reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCreateFailed.WrapMessage("missing required delivery information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	// Update the entity with generated values
	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// FindByID retrieves a delivery by its unique ID.
func (repo *deliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by ID")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// FindAll retrieves every delivery, newest first.
func (repo *deliveryRepository) FindAll(ctx context.Context) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries")
	}

	return toDeliveryDomainSlice(deliveryModels), nil
}

// Update replaces the stored fields of an existing delivery.
func (repo *deliveryRepository) Update(ctx context.Context, delivery *entity.Delivery) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", delivery.ID).
		Updates(map[string]any{
			"status": delivery.Status,
			"date":   delivery.Date,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// Delete removes a delivery by its ID.
func (repo *deliveryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeliveryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete delivery")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// FindAllByStatus retrieves the deliveries carrying the given status label.
func (repo *deliveryRepository) FindAllByStatus(ctx context.Context, status string) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by status")
	}

	return toDeliveryDomainSlice(deliveryModels), nil
}

// --- Mapper Functions ---

// toDeliveryDomain converts a GORM DeliveryModel to a domain Delivery entity.
func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:        data.ID,
		Status:    data.Status,
		Date:      data.Date,
		OrderID:   data.OrderID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toDeliveryDomainSlice(data []*model.DeliveryModel) []*entity.Delivery {
	deliveries := make([]*entity.Delivery, 0, len(data))
	for _, deliveryM := range data {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries
}

// fromDeliveryDomain converts a domain Delivery entity to a GORM DeliveryModel.
func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:        data.ID,
		Status:    data.Status,
		Date:      data.Date,
		OrderID:   data.OrderID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
