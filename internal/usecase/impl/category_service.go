// Package impl contains the implementation of the application's business logic.
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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
	}
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// GetCategory retrieves a category by ID
func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return category, nil
}

// ListCategories retrieves every category
func (s *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	return categories, nil
}

// UpdateCategory updates an existing category
func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input usecase.UpdateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return s.GetCategory(ctx, id)
}

// DeleteCategory removes a category by ID
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return repository.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// ListCategoryProducts retrieves the products filed under a category
func (s *categoryService) ListCategoryProducts(ctx context.Context, id uuid.UUID) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAllByCategoryID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by category")
	}

	return products, nil
}
