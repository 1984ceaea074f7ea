// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput defines the data required to update a category.
type UpdateCategoryInput struct {
	Name        string
	Description string
}

// CategoryUsecase defines the interface for category management use cases.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*entity.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// ListCategoryProducts retrieves the products filed under a category.
	ListCategoryProducts(ctx context.Context, id uuid.UUID) ([]*entity.Product, error)
}
