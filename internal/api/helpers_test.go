package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stefhagen/bloglist-api/internal/api"
	"github.com/stefhagen/bloglist-api/internal/api/middleware"
	"github.com/stefhagen/bloglist-api/internal/config"
	"github.com/stefhagen/bloglist-api/internal/domain"
	"github.com/stefhagen/bloglist-api/internal/mocks"
	"github.com/stefhagen/bloglist-api/internal/service/auth"
	"github.com/stefhagen/bloglist-api/internal/service/blog"
)

const testJWTSecret = "test-secret-that-is-at-least-32-chars-long"

// testServer bundles the wired router with the fakes behind it so tests can
// inspect state after requests.
type testServer struct {
	router       http.Handler
	userStore    *mocks.MockUserStore
	blogStore    *mocks.MockBlogStore
	tokenService auth.TokenService
}

// newTestServer wires the handlers and the auth middleware chain the same
// way the server router does, over mock stores and a real token service.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	userStore := mocks.NewMockUserStore()
	blogStore := mocks.NewMockBlogStore()

	tokenService, err := auth.NewTokenService(config.AuthConfig{JWTSecret: testJWTSecret})
	require.NoError(t, err)

	blogService, err := blog.NewService(blogStore, nil)
	require.NoError(t, err)

	userHandler := api.NewUserHandler(userStore)
	loginHandler := api.NewLoginHandler(userStore, tokenService, auth.NewBcryptVerifier())
	blogHandler := api.NewBlogHandler(blogService)
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userStore)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.ExtractToken)
		r.Use(authMiddleware.ResolveUser)

		r.Post("/users", userHandler.CreateUser)
		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{id}", userHandler.GetUser)

		r.Post("/login", loginHandler.Login)

		r.Get("/blogs", blogHandler.ListBlogs)
		r.Get("/blogs/stats", blogHandler.BlogStats)
		r.Get("/blogs/{id}", blogHandler.GetBlog)
		r.Post("/blogs", blogHandler.CreateBlog)
		r.Put("/blogs/{id}", blogHandler.UpdateBlog)
		r.Delete("/blogs/{id}", blogHandler.DeleteBlog)
	})

	return &testServer{
		router:       r,
		userStore:    userStore,
		blogStore:    blogStore,
		tokenService: tokenService,
	}
}

// request performs an HTTP request against the test router. A non-empty
// token goes out as a Bearer authorization header.
func (ts *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// seedUser inserts a user with a real bcrypt hash directly into the store
// and returns it together with a valid token.
func (ts *testServer) seedUser(t *testing.T, username, password string) (*domain.User, string) {
	t.Helper()

	user, err := domain.NewUser(username, "", password)
	require.NoError(t, err)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user.HashedPassword = string(hashed)
	user.Password = ""
	ts.userStore.Users[username] = user

	token, err := ts.tokenService.IssueToken(context.Background(), user)
	require.NoError(t, err)

	return user, token
}

// rawRequest builds a request with a literal body for malformed-payload cases.
func rawRequest(t *testing.T, method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

// decodeBody unmarshals a recorded JSON response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
