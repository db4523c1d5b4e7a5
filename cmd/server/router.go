package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/stefhagen/bloglist-api/internal/api"
	"github.com/stefhagen/bloglist-api/internal/api/middleware"
	"github.com/stefhagen/bloglist-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Token extraction and user resolution run on every /api
// route; handlers that require identity check it themselves, so anonymous
// reads pass through untouched.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.TraceMiddleware)

	userHandler := api.NewUserHandler(app.userStore)
	loginHandler := api.NewLoginHandler(app.userStore, app.tokenService, app.passwordVerifier)
	blogHandler := api.NewBlogHandler(app.blogService)
	authMiddleware := middleware.NewAuthMiddleware(app.tokenService, app.userStore)

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

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "unknown endpoint")
	})

	return r
}
