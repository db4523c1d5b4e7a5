package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefhagen/bloglist-api/internal/api"
	"github.com/stefhagen/bloglist-api/internal/api/shared"
)

func intPtr(v int) *int { return &v }

func TestCreateBlog(t *testing.T) {
	payload := api.CreateBlogRequest{
		Title:  "Go Concurrency Patterns",
		Author: "Rob Pike",
		URL:    "https://go.dev/talks/2012/concurrency",
		Likes:  intPtr(7),
	}

	t.Run("rejects anonymous requests", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.request(t, http.MethodPost, "/api/blogs", "", payload)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "token missing", resp.Error)
		assert.Empty(t, ts.blogStore.Blogs)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.request(t, http.MethodPost, "/api/blogs", "not.a.token", payload)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "token missing or invalid", resp.Error)
	})

	t.Run("binds the blog to the token holder", func(t *testing.T) {
		ts := newTestServer(t)
		user, token := ts.seedUser(t, "mluukkai", "salainen")

		rec := ts.request(t, http.MethodPost, "/api/blogs", token, payload)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.BlogResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Go Concurrency Patterns", resp.Title)
		assert.Equal(t, 7, resp.Likes)
		assert.Equal(t, user.ID, resp.User)

		stored, ok := ts.blogStore.Blogs[resp.ID]
		require.True(t, ok)
		assert.Equal(t, user.ID, stored.OwnerID)
	})

	t.Run("defaults likes to zero", func(t *testing.T) {
		ts := newTestServer(t)
		_, token := ts.seedUser(t, "mluukkai", "salainen")

		rec := ts.request(t, http.MethodPost, "/api/blogs", token, api.CreateBlogRequest{
			Title:  "Errors are values",
			Author: "Rob Pike",
			URL:    "https://go.dev/blog/errors-are-values",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.BlogResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, 0, resp.Likes)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		ts := newTestServer(t)
		_, token := ts.seedUser(t, "mluukkai", "salainen")

		rec := ts.request(t, http.MethodPost, "/api/blogs", token, api.CreateBlogRequest{
			Author: "Rob Pike",
			URL:    "https://go.dev/blog",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, ts.blogStore.Blogs)
	})
}

func TestListBlogs(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "mluukkai", "salainen")

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		rec := ts.request(t, http.MethodPost, "/api/blogs", token, api.CreateBlogRequest{
			Title:  title,
			Author: "someone",
			URL:    "https://example.com/" + title,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := ts.request(t, http.MethodGet, "/api/blogs", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []api.BlogResponse
	decodeBody(t, rec, &resp)
	assert.Len(t, resp, 3)
}

func TestGetBlog(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "mluukkai", "salainen")

	created := createBlog(t, ts, token, "Go Proverbs", 3)

	t.Run("found", func(t *testing.T) {
		rec := ts.request(t, http.MethodGet, "/api/blogs/"+created.ID.String(), "", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.BlogResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := ts.request(t, http.MethodGet, "/api/blogs/"+uuid.NewString(), "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := ts.request(t, http.MethodGet, "/api/blogs/5a3d5da59070081a82a3445", "", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "malformatted id", resp.Error)
	})
}

func TestUpdateBlog(t *testing.T) {
	t.Run("updates likes without a token", func(t *testing.T) {
		ts := newTestServer(t)
		_, token := ts.seedUser(t, "mluukkai", "salainen")
		created := createBlog(t, ts, token, "Go Proverbs", 3)

		rec := ts.request(t, http.MethodPut, "/api/blogs/"+created.ID.String(), "",
			api.UpdateBlogRequest{Likes: 42})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.BlogResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, 42, resp.Likes)
		assert.Equal(t, 42, ts.blogStore.Blogs[created.ID].Likes)
	})

	t.Run("unknown id", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.request(t, http.MethodPut, "/api/blogs/"+uuid.NewString(), "",
			api.UpdateBlogRequest{Likes: 1})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects negative likes", func(t *testing.T) {
		ts := newTestServer(t)
		_, token := ts.seedUser(t, "mluukkai", "salainen")
		created := createBlog(t, ts, token, "Go Proverbs", 3)

		rec := ts.request(t, http.MethodPut, "/api/blogs/"+created.ID.String(), "",
			api.UpdateBlogRequest{Likes: -1})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 3, ts.blogStore.Blogs[created.ID].Likes)
	})
}

func TestDeleteBlog(t *testing.T) {
	t.Run("only the owner may delete", func(t *testing.T) {
		ts := newTestServer(t)
		_, ownerToken := ts.seedUser(t, "mluukkai", "salainen")
		_, otherToken := ts.seedUser(t, "hellas", "hunter2")
		created := createBlog(t, ts, ownerToken, "Go Proverbs", 3)
		path := "/api/blogs/" + created.ID.String()

		// Anonymous callers are turned away first.
		rec := ts.request(t, http.MethodDelete, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		// A different authenticated user is forbidden.
		rec = ts.request(t, http.MethodDelete, path, otherToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)

		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "only the owner may modify this blog", resp.Error)
		assert.Contains(t, ts.blogStore.Blogs, created.ID)

		// The owner succeeds and the blog is gone afterwards.
		rec = ts.request(t, http.MethodDelete, path, ownerToken, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())

		rec = ts.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		ts := newTestServer(t)
		_, token := ts.seedUser(t, "mluukkai", "salainen")

		rec := ts.request(t, http.MethodDelete, "/api/blogs/"+uuid.NewString(), token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBlogStats(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.seedUser(t, "mluukkai", "salainen")

	t.Run("empty list", func(t *testing.T) {
		rec := ts.request(t, http.MethodGet, "/api/blogs/stats", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.BlogStatsResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, 0, resp.Count)
		assert.Equal(t, 0, resp.TotalLikes)
		assert.Nil(t, resp.Favorite)
		assert.Nil(t, resp.MostBlogs)
		assert.Nil(t, resp.MostLikes)
	})

	t.Run("aggregates over all blogs", func(t *testing.T) {
		for _, blog := range []struct {
			title string
			likes int
		}{
			{"React patterns", 7},
			{"Canonical string reduction", 12},
			{"First class tests", 10},
		} {
			rec := ts.request(t, http.MethodPost, "/api/blogs", token, api.CreateBlogRequest{
				Title:  blog.title,
				Author: "Edsger W. Dijkstra",
				URL:    "https://example.com",
				Likes:  intPtr(blog.likes),
			})
			require.Equal(t, http.StatusCreated, rec.Code)
		}

		rec := ts.request(t, http.MethodGet, "/api/blogs/stats", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.BlogStatsResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, 3, resp.Count)
		assert.Equal(t, 29, resp.TotalLikes)
		require.NotNil(t, resp.Favorite)
		assert.Equal(t, "Canonical string reduction", resp.Favorite.Title)
		require.NotNil(t, resp.MostBlogs)
		assert.Equal(t, 3, resp.MostBlogs.Blogs)
		require.NotNil(t, resp.MostLikes)
		assert.Equal(t, 29, resp.MostLikes.Likes)
	})
}

// createBlog posts a blog through the API and returns its external form.
func createBlog(t *testing.T, ts *testServer, token, title string, likes int) api.BlogResponse {
	t.Helper()

	rec := ts.request(t, http.MethodPost, "/api/blogs", token, api.CreateBlogRequest{
		Title:  title,
		Author: "Rob Pike",
		URL:    "https://example.com/" + title,
		Likes:  intPtr(likes),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.BlogResponse
	decodeBody(t, rec, &resp)
	return resp
}
