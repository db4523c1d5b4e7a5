package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/stefhagen/bloglist-api/internal/domain"
	"github.com/stefhagen/bloglist-api/internal/store"
)

// MockBlogStore implements store.BlogStore for testing
type MockBlogStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, blog *domain.Blog) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	ListFn        func(ctx context.Context) ([]*domain.Blog, error)
	UpdateLikesFn func(ctx context.Context, id uuid.UUID, likes int) (*domain.Blog, error)
	DeleteFn      func(ctx context.Context, id uuid.UUID) error

	// Data for the default implementation
	Blogs       map[uuid.UUID]*domain.Blog
	CreateError error
}

// Ensure MockBlogStore implements store.BlogStore
var _ store.BlogStore = (*MockBlogStore)(nil)

// NewMockBlogStore creates a new mock store with initialized defaults
func NewMockBlogStore() *MockBlogStore {
	return &MockBlogStore{
		Blogs: make(map[uuid.UUID]*domain.Blog),
	}
}

// Create implements the BlogStore interface
func (m *MockBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, blog)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := blog.Validate(); err != nil {
		return err
	}

	m.Blogs[blog.ID] = blog
	return nil
}

// GetByID implements the BlogStore interface
func (m *MockBlogStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	blog, exists := m.Blogs[id]
	if !exists {
		return nil, store.ErrBlogNotFound
	}
	return blog, nil
}

// List implements the BlogStore interface, returning blogs oldest first
// like the real store.
func (m *MockBlogStore) List(ctx context.Context) ([]*domain.Blog, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	blogs := make([]*domain.Blog, 0, len(m.Blogs))
	for _, blog := range m.Blogs {
		blogs = append(blogs, blog)
	}
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.Before(blogs[j].CreatedAt)
	})
	return blogs, nil
}

// UpdateLikes implements the BlogStore interface
func (m *MockBlogStore) UpdateLikes(ctx context.Context, id uuid.UUID, likes int) (*domain.Blog, error) {
	if m.UpdateLikesFn != nil {
		return m.UpdateLikesFn(ctx, id, likes)
	}

	blog, exists := m.Blogs[id]
	if !exists {
		return nil, store.ErrBlogNotFound
	}

	blog.Likes = likes
	blog.UpdatedAt = time.Now().UTC()
	return blog, nil
}

// Delete implements the BlogStore interface
func (m *MockBlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Blogs[id]; !exists {
		return store.ErrBlogNotFound
	}
	delete(m.Blogs, id)
	return nil
}
