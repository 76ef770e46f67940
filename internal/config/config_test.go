package config_test

import (
	"os"
	"testing"
	"time"

	"go-employees/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "APP_ENV", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DB_MAX_RETRIES", "REDIS_ADDR", "KAFKA_BROKER", "OUTBOX_POLL_INTERVAL", "CORS_ALLOWED_ORIGINS",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "localhost", cfg.DB.Host)
		assert.Equal(t, "disable", cfg.DB.SSLMode)
		assert.Equal(t, 5, cfg.DB.MaxRetries)
		assert.Equal(t, 3*time.Second, cfg.Kafka.OutboxPollInterval)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
		assert.Empty(t, cfg.Redis.Addr)
		assert.Empty(t, cfg.Kafka.Broker)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "8080")
		t.Setenv("APP_ENV", "production")
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_MAX_RETRIES", "2")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("OUTBOX_POLL_INTERVAL", "500ms")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, https://b.test,")

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, 2, cfg.DB.MaxRetries)
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, 500*time.Millisecond, cfg.Kafka.OutboxPollInterval)
		assert.Equal(t, []string{"http://a.test", "https://b.test"}, cfg.CORSAllowedOrigins)
		assert.Contains(t, cfg.DB.DSN(), "host=db")
	})

	t.Run("invalid retries", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_MAX_RETRIES", "many")

		_, err := config.Load()

		assert.Error(t, err)
	})

	t.Run("retries below one", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_MAX_RETRIES", "0")

		_, err := config.Load()

		assert.EqualError(t, err, "DB_MAX_RETRIES must be at least 1")
	})

	t.Run("invalid poll interval", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OUTBOX_POLL_INTERVAL", "soon")

		_, err := config.Load()

		assert.Error(t, err)
	})

	t.Run("origin without scheme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CORS_ALLOWED_ORIGINS", "localhost:3000")

		_, err := config.Load()

		assert.ErrorContains(t, err, "CORS_ALLOWED_ORIGINS")
	})
}
