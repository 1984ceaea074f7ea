package repository

import (
	"context"
	"errors"

	"freshmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by ID with roles, owned farm, orders
	// and reviews preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID. The user's orders and reviews are removed
	// by the storage cascade; role grants are detached.
	Delete(ctx context.Context, id uuid.UUID) error
}
