package impl

import (
	"context"
	"testing"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	mockRepo "freshmarket/internal/mocks/repository"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewServiceForTest(t *testing.T) (usecase.ReviewUsecase, *mockRepo.MockReviewRepository, *mockRepo.MockFarmRepository, *mockRepo.MockUserRepository) {
	t.Helper()

	reviewRepo := mockRepo.NewMockReviewRepository(t)
	farmRepo := mockRepo.NewMockFarmRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo: reviewRepo,
		FarmRepo:   farmRepo,
		UserRepo:   userRepo,
	})

	return svc, reviewRepo, farmRepo, userRepo
}

func TestReviewService_CreateReview(t *testing.T) {
	svc, reviewRepo, farmRepo, userRepo := newReviewServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	farmID := uuid.New()

	userRepo.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil).Once()
	farmRepo.On("FindByID", ctx, farmID).Return(&entity.Farm{ID: farmID}, nil).Once()
	reviewRepo.On("Create", ctx, &entity.Review{
		Rating:  5,
		Content: "Great produce",
		UserID:  userID,
		FarmID:  farmID,
	}).Return(nil).Once()

	review, err := svc.CreateReview(ctx, usecase.CreateReviewInput{
		Rating:  5,
		Content: "Great produce",
		UserID:  userID,
		FarmID:  farmID,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	svc, _, _, _ := newReviewServiceForTest(t)

	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(ctx, usecase.CreateReviewInput{
			Rating: rating,
			UserID: uuid.New(),
			FarmID: uuid.New(),
		})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr), "rating %d should be rejected", rating)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}
}

func TestReviewService_UpdateReview_RatingOutOfRange(t *testing.T) {
	svc, _, _, _ := newReviewServiceForTest(t)

	_, err := svc.UpdateReview(context.Background(), uuid.New(), usecase.UpdateReviewInput{
		Rating: 6,
	})
	assert.Error(t, err)
}
