package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stefhagen/bloglist-api/internal/domain"
)

// BlogStore defines the interface for blog data persistence.
type BlogStore interface {
	// Create saves a new blog to the store.
	// Returns validation errors from the domain Blog if data is invalid.
	Create(ctx context.Context, blog *domain.Blog) error

	// GetByID retrieves a blog by its unique ID.
	// Returns ErrBlogNotFound if the blog does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)

	// List returns all blogs, oldest first.
	List(ctx context.Context) ([]*domain.Blog, error)

	// UpdateLikes sets the likes count of an existing blog.
	// Returns ErrBlogNotFound if the blog does not exist.
	UpdateLikes(ctx context.Context, id uuid.UUID, likes int) (*domain.Blog, error)

	// Delete removes a blog from the store by its ID.
	// Returns ErrBlogNotFound if the blog does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
