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

// roleService implements the RoleUsecase interface.
type roleService struct {
	roleRepo repository.RoleRepository
}

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	RoleRepo repository.RoleRepository
}

// NewRoleService creates a new role service instance
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		roleRepo: params.RoleRepo,
	}
}

// CreateRole creates a new role
func (s *roleService) CreateRole(ctx context.Context, name string) (*entity.Role, error) {
	role := &entity.Role{
		Name: name,
	}

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, errors.Wrap(err, "failed to create role")
	}

	return role, nil
}

// GetRole retrieves a role by ID
func (s *roleService) GetRole(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find role by ID")
	}

	return role, nil
}

// GetRoleByName retrieves a role by its unique name
func (s *roleService) GetRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	role, err := s.roleRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return role, nil
}

// ListRoles retrieves every role
func (s *roleService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := s.roleRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find roles")
	}

	return roles, nil
}

// UpdateRole renames an existing role
func (s *roleService) UpdateRole(ctx context.Context, id uuid.UUID, name string) (*entity.Role, error) {
	role := &entity.Role{
		ID:   id,
		Name: name,
	}

	if err := s.roleRepo.Update(ctx, role); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to update role")
	}

	return role, nil
}

// DeleteRole removes a role by ID
func (s *roleService) DeleteRole(ctx context.Context, id uuid.UUID) error {
	if err := s.roleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete role")
	}

	return nil
}
