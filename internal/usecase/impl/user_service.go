package impl

import (
	"context"
	"log/slog"

	"freshmarket/internal/domain/entity"
	domainerrors "freshmarket/internal/domain/errors"
	"freshmarket/internal/domain/repository"
	"freshmarket/internal/domain/service"
	"freshmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		roleRepo:     params.RoleRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register creates a new user account. The email check, the role grant and
// the insert run in one transaction so two concurrent registrations cannot
// both claim the same address.
func (s *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		roleRepo := repoFactory.RoleRepo()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		// New accounts get the USER role when it has been seeded.
		role, err := roleRepo.FindByName(ctx, entity.RoleUser)
		if err == nil {
			user.Roles = []entity.Role{*role}
		} else if !errors.Is(err, repository.ErrRoleNotFound) {
			return errors.Wrap(err, "failed to find role by name")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
	)

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and issues a token pair. A wrong email and
// a wrong password fail identically.
func (s *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(user.ID, entity.RoleNames(user.Roles))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetUser retrieves a user with roles, owned farm, orders and reviews
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// ListUsers retrieves every user
func (s *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	return users, nil
}

// UpdateUser updates a user's account fields and, when a role set is given,
// resets their role grants.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return err
			}

			return errors.Wrap(err, "failed to find user by ID")
		}

		existing.Username = input.Username
		existing.Email = input.Email
		existing.FarmID = input.FarmID
		existing.Roles = input.Roles

		if err := userRepo.Update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(ctx, id)
}

// DeleteUser removes a user by ID
func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

// OrdersForUser retrieves the orders placed by a user. An unknown user has
// an empty history rather than an error.
func (s *userService) OrdersForUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return []entity.Order{}, nil
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	if user.Orders == nil {
		return []entity.Order{}, nil
	}

	return user.Orders, nil
}

// ReviewsForUser retrieves the reviews authored by a user. An unknown user
// has an empty history rather than an error.
func (s *userService) ReviewsForUser(ctx context.Context, userID uuid.UUID) ([]entity.Review, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return []entity.Review{}, nil
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	if user.Reviews == nil {
		return []entity.Review{}, nil
	}

	return user.Reviews, nil
}
