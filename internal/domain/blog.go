package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Blog
var (
	ErrEmptyBlogID     = errors.New("blog ID cannot be empty")
	ErrEmptyBlogTitle  = errors.New("blog title cannot be empty")
	ErrEmptyBlogAuthor = errors.New("blog author cannot be empty")
	ErrEmptyBlogURL    = errors.New("blog url cannot be empty")
)

// Blog represents a single blog entry. OwnerID references the user that
// created the entry and gates deletion. An OwnerID with no matching user
// is tolerated on reads; users are never cascade-deleted into blogs.
type Blog struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Likes     int       `json:"likes"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBlog creates a new Blog owned by the given user. It generates a new
// UUID for the blog ID and sets the creation/update timestamps. A negative
// likes value normalizes to zero, matching the behavior for an omitted one.
// Returns an error if validation fails.
func NewBlog(ownerID uuid.UUID, title, author, url string, likes int) (*Blog, error) {
	if likes < 0 {
		likes = 0
	}

	blog := &Blog{
		ID:        uuid.New(),
		Title:     title,
		Author:    author,
		URL:       url,
		Likes:     likes,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := blog.Validate(); err != nil {
		return nil, err
	}

	return blog, nil
}

// Validate checks if the Blog has valid data.
// Returns an error if any field fails validation.
func (b *Blog) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBlogID
	}

	if b.Title == "" {
		return ErrEmptyBlogTitle
	}

	if b.Author == "" {
		return ErrEmptyBlogAuthor
	}

	if b.URL == "" {
		return ErrEmptyBlogURL
	}

	return nil
}
