package usecase

import (
	"context"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserInput defines the data required to update a user's account.
// A nil Roles slice leaves the role grants unchanged.
type UpdateUserInput struct {
	Username string
	Email    string
	FarmID   *uuid.UUID
	Roles    []entity.Role
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for user account operations and the
// per-user relationship listings.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// GetUser retrieves a user with roles, owned farm, orders and reviews.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// OrdersForUser retrieves the orders placed by a user. An unknown user
	// has an empty history, not an error.
	OrdersForUser(ctx context.Context, userID uuid.UUID) ([]entity.Order, error)

	// ReviewsForUser retrieves the reviews authored by a user. An unknown
	// user has an empty history, not an error.
	ReviewsForUser(ctx context.Context, userID uuid.UUID) ([]entity.Review, error)
}
