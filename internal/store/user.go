package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stefhagen/bloglist-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// It handles domain validation and password hashing internally.
	// Returns ErrUsernameExists if the username is already taken; the
	// uniqueness check is the store's own unique constraint, not an
	// application-level lookup.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID, with BlogIDs populated
	// oldest first. Returns ErrUserNotFound if the user does not exist.
	// The returned user never contains a plaintext password.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns all users with their BlogIDs populated.
	List(ctx context.Context) ([]*domain.User, error)

	// Delete removes a user from the store by their ID. Blogs owned by the
	// user are left in place; their owner references become dangling.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
