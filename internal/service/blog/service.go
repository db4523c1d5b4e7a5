// Package blog implements the ownership-enforcing resource layer for blog
// entries. Every mutation path runs through it: creation binds the entry to
// the calling user, deletion is gated on that binding, and updates are gated
// on existence only. Reads are public.
package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stefhagen/bloglist-api/internal/domain"
	"github.com/stefhagen/bloglist-api/internal/platform/logger"
	"github.com/stefhagen/bloglist-api/internal/store"
)

// Service errors
var (
	// ErrAuthRequired indicates an anonymous caller attempted an operation
	// that requires a resolved identity.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotOwner indicates an authenticated caller attempted to mutate a
	// blog owned by someone else.
	ErrNotOwner = errors.New("blog not owned by user")
)

// CreateParams carries the caller-supplied fields for a new blog.
// Likes is a pointer so "omitted" and "zero" are distinguishable; both
// persist as zero, as does any negative value.
type CreateParams struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

// Service coordinates blog mutations against the store, consulting the
// resolved request identity before any write.
type Service struct {
	blogStore store.BlogStore
	logger    *slog.Logger
}

// NewService creates a blog service backed by the given store.
func NewService(blogStore store.BlogStore, logger *slog.Logger) (*Service, error) {
	if blogStore == nil {
		return nil, fmt.Errorf("blog store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		blogStore: blogStore,
		logger:    logger.With(slog.String("component", "blog_service")),
	}, nil
}

// Create persists a new blog owned by the given user.
// Returns ErrAuthRequired if owner is nil (anonymous caller), or domain
// validation errors for missing required fields.
func (s *Service) Create(ctx context.Context, owner *domain.User, params CreateParams) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if owner == nil {
		log.Debug("anonymous blog creation rejected")
		return nil, ErrAuthRequired
	}

	likes := 0
	if params.Likes != nil && *params.Likes > 0 {
		likes = *params.Likes
	}

	blog, err := domain.NewBlog(owner.ID, params.Title, params.Author, params.URL, likes)
	if err != nil {
		return nil, err
	}

	if err := s.blogStore.Create(ctx, blog); err != nil {
		return nil, err
	}

	log.Info("blog created",
		slog.String("blog_id", blog.ID.String()),
		slog.String("owner_id", owner.ID.String()))
	return blog, nil
}

// UpdateLikes sets the likes count of an existing blog. Only existence
// gates the update; ownership deliberately does not, unlike Delete.
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *Service) UpdateLikes(ctx context.Context, id uuid.UUID, likes int) (*domain.Blog, error) {
	if likes < 0 {
		likes = 0
	}
	return s.blogStore.UpdateLikes(ctx, id, likes)
}

// Delete removes a blog. The caller must be authenticated and must own the
// blog. Returns ErrAuthRequired for an anonymous caller, ErrNotOwner when
// the caller is not the owner, store.ErrBlogNotFound when the blog is gone.
func (s *Service) Delete(ctx context.Context, caller *domain.User, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if caller == nil {
		log.Debug("anonymous blog deletion rejected",
			slog.String("blog_id", id.String()))
		return ErrAuthRequired
	}

	blog, err := s.blogStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if blog.OwnerID != caller.ID {
		log.Warn("blog deletion rejected: caller is not the owner",
			slog.String("blog_id", id.String()),
			slog.String("owner_id", blog.OwnerID.String()),
			slog.String("caller_id", caller.ID.String()))
		return ErrNotOwner
	}

	return s.blogStore.Delete(ctx, id)
}

// GetByID retrieves a single blog. Unauthenticated.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	return s.blogStore.GetByID(ctx, id)
}

// List retrieves all blogs, oldest first. Unauthenticated.
func (s *Service) List(ctx context.Context) ([]*domain.Blog, error) {
	return s.blogStore.List(ctx)
}
