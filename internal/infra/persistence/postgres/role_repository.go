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

// roleRepository implements the repository.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
	}
}

// Create persists a new role.
func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("role name already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCreateFailed.WrapMessage("missing required role information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	role.ID = roleM.ID

	return nil
}

// FindByID retrieves a role by its unique ID.
func (repo *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	var roleM model.RoleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by ID")
	}

	return toRoleDomain(&roleM), nil
}

// FindByName retrieves a role by its unique name.
func (repo *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var roleM model.RoleModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

// FindAll retrieves every role ordered by name.
func (repo *roleRepository) FindAll(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

// Update replaces the stored fields of an existing role.
func (repo *roleRepository) Update(ctx context.Context, role *entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("id = ?", role.ID).
		Update("name", role.Name)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("role name already exists")
		}

		return errors.Wrap(result.Error, "failed to update role")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// Delete removes a role by its ID.
func (repo *roleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RoleModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("role is still granted to users")
		}

		return errors.Wrap(result.Error, "failed to delete role")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toRoleDomainSlice(data []model.RoleModel) []entity.Role {
	if len(data) == 0 {
		return nil
	}

	roles := make([]entity.Role, 0, len(data))
	for i := range data {
		roles = append(roles, *toRoleDomain(&data[i]))
	}

	return roles
}

// fromRoleDomain converts a domain Role entity to a GORM RoleModel.
func fromRoleDomain(data *entity.Role) *model.RoleModel {
	if data == nil {
		return nil
	}

	return &model.RoleModel{
		ID:   data.ID,
		Name: data.Name,
	}
}

func fromRoleDomainSlice(data []entity.Role) []model.RoleModel {
	roles := make([]model.RoleModel, 0, len(data))
	for i := range data {
		roles = append(roles, *fromRoleDomain(&data[i]))
	}

	return roles
}
