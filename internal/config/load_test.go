package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefhagen/bloglist-api/internal/config"
)

const testSecret = "a-signing-secret-that-is-long-enough-to-pass"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BLOGLIST_DATABASE_URL", "postgres://localhost:5432/bloglist_test")
	t.Setenv("BLOGLIST_AUTH_JWT_SECRET", testSecret)
}

func TestLoad(t *testing.T) {
	t.Run("defaults with required env vars set", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 3003, cfg.Server.Port)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, "postgres://localhost:5432/bloglist_test", cfg.Database.URL)
		assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
		assert.Equal(t, 0, cfg.Auth.TokenLifetimeMinutes)
		assert.Equal(t, 0, cfg.Auth.BcryptCost)
	})

	t.Run("env vars override defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLOGLIST_SERVER_PORT", "8080")
		t.Setenv("BLOGLIST_SERVER_LOG_LEVEL", "debug")
		t.Setenv("BLOGLIST_AUTH_TOKEN_LIFETIME_MINUTES", "60")
		t.Setenv("BLOGLIST_AUTH_BCRYPT_COST", "12")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.LogLevel)
		assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
		assert.Equal(t, 12, cfg.Auth.BcryptCost)
	})

	t.Run("missing database url fails", func(t *testing.T) {
		t.Setenv("BLOGLIST_AUTH_JWT_SECRET", testSecret)

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("short jwt secret fails", func(t *testing.T) {
		t.Setenv("BLOGLIST_DATABASE_URL", "postgres://localhost:5432/bloglist_test")
		t.Setenv("BLOGLIST_AUTH_JWT_SECRET", "too-short")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("unknown log level fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("BLOGLIST_SERVER_LOG_LEVEL", "verbose")

		_, err := config.Load()
		require.Error(t, err)
	})
}
