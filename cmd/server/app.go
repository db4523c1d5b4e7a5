package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/stefhagen/bloglist-api/internal/config"
	"github.com/stefhagen/bloglist-api/internal/platform/postgres"
	"github.com/stefhagen/bloglist-api/internal/service/auth"
	"github.com/stefhagen/bloglist-api/internal/service/blog"
	"github.com/stefhagen/bloglist-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	blogStore store.BlogStore

	// Services
	tokenService     auth.TokenService
	passwordVerifier auth.PasswordVerifier
	blogService      *blog.Service
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	app.userStore = postgres.NewUserStore(db, cfg.Auth.BcryptCost, logger)
	app.blogStore = postgres.NewBlogStore(db, logger)

	app.blogService, err = blog.NewService(app.blogStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
