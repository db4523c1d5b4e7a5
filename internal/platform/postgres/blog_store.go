package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stefhagen/bloglist-api/internal/domain"
	"github.com/stefhagen/bloglist-api/internal/platform/logger"
	"github.com/stefhagen/bloglist-api/internal/store"
)

// BlogStore implements the store.BlogStore interface
// using a PostgreSQL database as the storage backend.
type BlogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBlogStore creates a new PostgreSQL implementation of the BlogStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, the default
// logger is used.
func NewBlogStore(db store.DBTX, logger *slog.Logger) *BlogStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BlogStore{
		db:     db,
		logger: logger.With(slog.String("component", "blog_store")),
	}
}

// Ensure BlogStore implements store.BlogStore interface
var _ store.BlogStore = (*BlogStore)(nil)

// Create implements store.BlogStore.Create
func (s *BlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := blog.Validate(); err != nil {
		log.Warn("blog validation failed during create",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()))
		return err
	}

	query := `
		INSERT INTO blogs (id, title, author, url, likes, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		blog.ID,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.OwnerID,
		blog.CreatedAt,
		blog.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()),
			slog.String("owner_id", blog.OwnerID.String()))
		return MapError(err)
	}

	log.Info("blog created successfully",
		slog.String("blog_id", blog.ID.String()),
		slog.String("owner_id", blog.OwnerID.String()))
	return nil
}

// GetByID implements store.BlogStore.GetByID
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *BlogStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, author, url, likes, owner_id, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`

	var blog domain.Blog
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Author,
		&blog.URL,
		&blog.Likes,
		&blog.OwnerID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("blog not found", slog.String("blog_id", id.String()))
			return nil, store.ErrBlogNotFound
		}
		log.Error("failed to get blog by ID",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return nil, MapError(err)
	}

	return &blog, nil
}

// List implements store.BlogStore.List
func (s *BlogStore) List(ctx context.Context) ([]*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, author, url, likes, owner_id, created_at, updated_at
		FROM blogs
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list blogs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	blogs := []*domain.Blog{}
	for rows.Next() {
		var blog domain.Blog
		if err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Author,
			&blog.URL,
			&blog.Likes,
			&blog.OwnerID,
			&blog.CreatedAt,
			&blog.UpdatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		blogs = append(blogs, &blog)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return blogs, nil
}

// UpdateLikes implements store.BlogStore.UpdateLikes
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *BlogStore) UpdateLikes(ctx context.Context, id uuid.UUID, likes int) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE blogs
		SET likes = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id, likes, time.Now().UTC())
	if err != nil {
		log.Error("failed to update blog likes",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return nil, MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrBlogNotFound); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements store.BlogStore.Delete
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *BlogStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrBlogNotFound); err != nil {
		return err
	}

	log.Info("blog deleted", slog.String("blog_id", id.String()))
	return nil
}
