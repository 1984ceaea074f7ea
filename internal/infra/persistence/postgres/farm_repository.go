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

// farmRepository implements the repository.FarmRepository interface.
type farmRepository struct {
	db *gorm.DB
}

// NewFarmRepository is the constructor for farmRepository.
func NewFarmRepository(db *gorm.DB) repository.FarmRepository {
	return &farmRepository{
		db: db,
	}
}

// Create persists a new farm.
func (repo *farmRepository) Create(ctx context.Context, farm *entity.Farm) error {
	farmM := fromFarmDomain(farm)

	if err := repo.db.WithContext(ctx).Create(farmM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCreateFailed.WrapMessage("missing required farm information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create farm")
	}

	// Update the entity with generated values
	farm.ID = farmM.ID
	farm.CreatedAt = farmM.CreatedAt
	farm.UpdatedAt = farmM.UpdatedAt

	return nil
}

// FindByID retrieves a farm by its unique ID.
func (repo *farmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Farm, error) {
	var farmM model.FarmModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&farmM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmNotFound
		}

		return nil, errors.Wrap(err, "failed to find farm by ID")
	}

	return toFarmDomain(&farmM), nil
}

// FindAll retrieves every farm ordered by name.
func (repo *farmRepository) FindAll(ctx context.Context) ([]*entity.Farm, error) {
	var farmModels []*model.FarmModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&farmModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find farms")
	}

	farms := make([]*entity.Farm, 0, len(farmModels))
	for _, farmM := range farmModels {
		farms = append(farms, toFarmDomain(farmM))
	}

	return farms, nil
}

// Update replaces the stored fields of an existing farm.
func (repo *farmRepository) Update(ctx context.Context, farm *entity.Farm) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FarmModel{}).
		Where("id = ?", farm.ID).
		Updates(map[string]any{
			"name":    farm.Name,
			"address": farm.Address,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update farm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFarmNotFound
	}

	return nil
}

// Delete removes a farm by its ID. Reviews, stock links and orders held by
// the farm are removed by the database cascade.
func (repo *farmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FarmModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete farm")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFarmNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFarmDomain converts a GORM FarmModel to a domain Farm entity.
func toFarmDomain(data *model.FarmModel) *entity.Farm {
	if data == nil {
		return nil
	}

	return &entity.Farm{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromFarmDomain converts a domain Farm entity to a GORM FarmModel.
func fromFarmDomain(data *entity.Farm) *model.FarmModel {
	if data == nil {
		return nil
	}

	return &model.FarmModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
