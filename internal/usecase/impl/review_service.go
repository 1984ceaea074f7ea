package impl

import (
	"context"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	farmRepo   repository.FarmRepository
	userRepo   repository.UserRepository
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	FarmRepo   repository.FarmRepository
	UserRepo   repository.UserRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		farmRepo:   params.FarmRepo,
		userRepo:   params.UserRepo,
	}
}

// CreateReview records a user's rating of a farm after checking both exist
// and the rating is within bounds.
func (s *reviewService) CreateReview(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating outside the allowed range")
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	if _, err := s.farmRepo.FindByID(ctx, input.FarmID); err != nil {
		if errors.Is(err, repository.ErrFarmNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find farm by ID")
	}

	review := &entity.Review{
		Rating:  input.Rating,
		Content: input.Content,
		UserID:  input.UserID,
		FarmID:  input.FarmID,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}

// GetReview retrieves a review by ID
func (s *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return review, nil
}

// ListReviews retrieves every review
func (s *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews")
	}

	return reviews, nil
}

// UpdateReview updates an existing review
func (s *reviewService) UpdateReview(ctx context.Context, id uuid.UUID, input usecase.UpdateReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating outside the allowed range")
	}

	review := &entity.Review{
		ID:      id,
		Rating:  input.Rating,
		Content: input.Content,
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	return s.GetReview(ctx, id)
}

// DeleteReview removes a review by ID
func (s *reviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// ListReviewsByFarm retrieves the reviews written about a farm
func (s *reviewService) ListReviewsByFarm(ctx context.Context, farmID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindAllByFarmID(ctx, farmID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by farm")
	}

	return reviews, nil
}
