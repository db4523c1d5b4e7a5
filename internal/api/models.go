package api

import (
	"github.com/google/uuid"

	"github.com/stefhagen/bloglist-api/internal/domain"
	"github.com/stefhagen/bloglist-api/internal/stats"
)

// CreateUserRequest is the payload for POST /api/users.
// Length rules are enforced by the domain so empty and too-short fields get
// their distinct messages; the DTO only shapes the JSON.
type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// CreateBlogRequest is the payload for POST /api/blogs.
// Likes is optional and defaults to zero.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes,omitempty"`
}

// UpdateBlogRequest is the payload for PUT /api/blogs/{id}.
type UpdateBlogRequest struct {
	Likes int `json:"likes" validate:"gte=0"`
}

// UserResponse is the external representation of a user. It never carries
// password material; the internal identifier surfaces as a plain id string.
type UserResponse struct {
	ID       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name,omitempty"`
	Blogs    []uuid.UUID `json:"blogs"`
}

// NewUserResponse builds the external form of a user.
func NewUserResponse(user *domain.User) UserResponse {
	blogs := user.BlogIDs
	if blogs == nil {
		blogs = []uuid.UUID{}
	}
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Blogs:    blogs,
	}
}

// BlogResponse is the external representation of a blog.
type BlogResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	URL    string    `json:"url"`
	Likes  int       `json:"likes"`
	User   uuid.UUID `json:"user"`
}

// NewBlogResponse builds the external form of a blog.
func NewBlogResponse(blog *domain.Blog) BlogResponse {
	return BlogResponse{
		ID:     blog.ID,
		Title:  blog.Title,
		Author: blog.Author,
		URL:    blog.URL,
		Likes:  blog.Likes,
		User:   blog.OwnerID,
	}
}

// BlogStatsResponse is the payload for GET /api/blogs/stats.
type BlogStatsResponse struct {
	Count      int                `json:"count"`
	TotalLikes int                `json:"total_likes"`
	Favorite   *BlogResponse      `json:"favorite,omitempty"`
	MostBlogs  *stats.AuthorBlogs `json:"most_blogs,omitempty"`
	MostLikes  *stats.AuthorLikes `json:"most_likes,omitempty"`
}
