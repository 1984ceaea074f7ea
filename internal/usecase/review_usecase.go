package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReviewInput defines the data required to review a farm.
type CreateReviewInput struct {
	Rating  int
	Content string
	UserID  uuid.UUID
	FarmID  uuid.UUID
}

// UpdateReviewInput defines the data required to update a review.
type UpdateReviewInput struct {
	Rating  int
	Content string
}

// ReviewUsecase defines the interface for review management.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	ListReviews(ctx context.Context) ([]*entity.Review, error)
	UpdateReview(ctx context.Context, id uuid.UUID, input UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error

	// ListReviewsByFarm retrieves the reviews written about a farm.
	ListReviewsByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.Review, error)
}
