package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stefhagen/bloglist-api/internal/api/shared"
	"github.com/stefhagen/bloglist-api/internal/service/blog"
	"github.com/stefhagen/bloglist-api/internal/stats"
)

// BlogHandler handles blog CRUD and statistics requests. The resolved
// request identity comes from the auth middleware chain; the ownership
// rules themselves live in the blog service.
type BlogHandler struct {
	blogService *blog.Service
}

// NewBlogHandler creates a new BlogHandler with the given dependencies.
func NewBlogHandler(blogService *blog.Service) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// ListBlogs handles GET /api/blogs. Unauthenticated.
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	resp := make([]BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		resp = append(resp, NewBlogResponse(b))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetBlog handles GET /api/blogs/{id}. Unauthenticated.
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	b, err := h.blogService.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewBlogResponse(b))
}

// CreateBlog handles POST /api/blogs. Requires a resolved identity; the
// created blog is bound to the caller.
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	caller := shared.CurrentUser(r.Context())

	b, err := h.blogService.Create(r.Context(), caller, blog.CreateParams{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewBlogResponse(b))
}

// UpdateBlog handles PUT /api/blogs/{id}. Only existence and id validity
// gate the update.
func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req UpdateBlogRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "likes must be non-negative")
		return
	}

	b, err := h.blogService.UpdateLikes(r.Context(), id, req.Likes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewBlogResponse(b))
}

// DeleteBlog handles DELETE /api/blogs/{id}. Owner only.
func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	caller := shared.CurrentUser(r.Context())

	if err := h.blogService.Delete(r.Context(), caller, id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BlogStats handles GET /api/blogs/stats. Unauthenticated.
func (h *BlogHandler) BlogStats(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	resp := BlogStatsResponse{
		Count:      len(blogs),
		TotalLikes: stats.TotalLikes(blogs),
		MostBlogs:  stats.MostBlogs(blogs),
		MostLikes:  stats.MostLikes(blogs),
	}
	if favorite := stats.FavoriteBlog(blogs); favorite != nil {
		fr := NewBlogResponse(favorite)
		resp.Favorite = &fr
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// parseID extracts and validates the {id} path parameter, answering 400 on
// a structurally invalid identifier.
func (h *BlogHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "malformatted id")
		return uuid.Nil, false
	}
	return id, true
}
