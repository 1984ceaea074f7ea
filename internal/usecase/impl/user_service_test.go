package impl

import (
	"context"
	"testing"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"
	mockRepo "freshmarket/internal/mocks/repository"
	mockSvc "freshmarket/internal/mocks/service"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo *mockRepo.MockUserRepository
	roleRepo *mockRepo.MockRoleRepository
	hasher   *mockSvc.MockPasswordHasher
	tokens   *mockSvc.MockTokenService
}

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, userServiceMocks) {
	t.Helper()

	m := userServiceMocks{
		userRepo: mockRepo.NewMockUserRepository(t),
		roleRepo: mockRepo.NewMockRoleRepository(t),
		hasher:   mockSvc.NewMockPasswordHasher(t),
		tokens:   mockSvc.NewMockTokenService(t),
	}

	txManager := &mockRepo.MockTransactionManager{
		Factory: &mockRepo.MockRepositoryFactory{
			Users: m.userRepo,
			Roles: m.roleRepo,
		},
	}

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     m.userRepo,
		RoleRepo:     m.roleRepo,
		Hasher:       m.hasher,
		TokenService: m.tokens,
		Logger:       discardLogger(),
	})

	return svc, m
}

func TestUserService_Register_GrantsUserRole(t *testing.T) {
	svc, m := newUserServiceForTest(t)

	ctx := context.Background()
	userRole := &entity.Role{ID: uuid.New(), Name: entity.RoleUser}

	m.hasher.On("Hash", "hunter22").Return("hashed", nil).Once()
	m.userRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(nil, repository.ErrUserNotFound).Once()
	m.roleRepo.On("FindByName", ctx, entity.RoleUser).Return(userRole, nil).Once()
	m.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()

	out, err := svc.Register(ctx, usecase.RegisterUserInput{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	require.Len(t, out.User.Roles, 1)
	assert.Equal(t, entity.RoleUser, out.User.Roles[0].Name)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	svc, m := newUserServiceForTest(t)

	ctx := context.Background()

	m.hasher.On("Hash", "hunter22").Return("hashed", nil).Once()
	m.userRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "ana@example.com"}, nil).Once()

	_, err := svc.Register(ctx, usecase.RegisterUserInput{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Login_Succeeds(t *testing.T) {
	svc, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "ana@example.com",
		PasswordHash: "hashed",
		Roles:        []entity.Role{{ID: uuid.New(), Name: entity.RoleUser}},
	}

	m.userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil).Once()
	m.hasher.On("Check", "hunter22", "hashed").Return(true).Once()
	m.tokens.On("GenerateTokens", userID, []string{entity.RoleUser}).
		Return("access", "refresh", nil).Once()

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, m := newUserServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed"}

	m.userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil).Once()
	m.hasher.On("Check", "wrong", "hashed").Return(false).Once()

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, m := newUserServiceForTest(t)

	ctx := context.Background()

	m.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound).Once()

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_OrdersForUser_UnknownUserIsEmpty(t *testing.T) {
	svc, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.On("FindByID", ctx, userID).
		Return(nil, repository.ErrUserNotFound).Once()

	orders, err := svc.OrdersForUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NotNil(t, orders)
}

func TestUserService_OrdersForUser_ReturnsHistory(t *testing.T) {
	svc, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID: userID,
		Orders: []entity.Order{
			{ID: uuid.New(), UserID: userID},
			{ID: uuid.New(), UserID: userID},
		},
	}

	m.userRepo.On("FindByID", ctx, userID).Return(user, nil).Once()

	orders, err := svc.OrdersForUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestUserService_ReviewsForUser_UnknownUserIsEmpty(t *testing.T) {
	svc, m := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.On("FindByID", ctx, userID).
		Return(nil, repository.ErrUserNotFound).Once()

	reviews, err := svc.ReviewsForUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.NotNil(t, reviews)
}
