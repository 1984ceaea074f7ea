package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleUsecase defines the interface for role management.
type RoleUsecase interface {
	CreateRole(ctx context.Context, name string) (*entity.Role, error)
	GetRole(ctx context.Context, id uuid.UUID) (*entity.Role, error)
	GetRoleByName(ctx context.Context, name string) (*entity.Role, error)
	ListRoles(ctx context.Context) ([]*entity.Role, error)
	UpdateRole(ctx context.Context, id uuid.UUID, name string) (*entity.Role, error)
	DeleteRole(ctx context.Context, id uuid.UUID) error
}
