package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMethods(t *testing.T) {
	t.Run("Addr returns formatted port", func(t *testing.T) {
		cfg := &Config{Port: 3000}
		assert.Equal(t, ":3000", cfg.Addr())
	})

	t.Run("SessionTTL converts seconds to duration", func(t *testing.T) {
		cfg := &Config{SessionTTLSeconds: 900}
		assert.Equal(t, 900*time.Second, cfg.SessionTTL())
	})

	t.Run("AuditRetention converts days to duration", func(t *testing.T) {
		cfg := &Config{AuditRetentionDays: 7}
		assert.Equal(t, 7*24*time.Hour, cfg.AuditRetention())
	})

	t.Run("RecommendTimeout converts seconds to duration", func(t *testing.T) {
		cfg := &Config{RecommendTimeoutSeconds: 45}
		assert.Equal(t, 45*time.Second, cfg.RecommendTimeout())
	})
}

func TestLoad(t *testing.T) {
	setRequired := func(t *testing.T) {
		t.Setenv("TELEGRAM_TOKEN", "123:abc")
		t.Setenv("GEMINI_API_KEY", "g-key")
		t.Setenv("SERPAPI_KEY", "s-key")
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("REDIS_URL", "redis://localhost:6379")
	}

	t.Run("loads config with defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
		assert.Equal(t, "travelbot", cfg.MongoDBName)
		assert.Equal(t, 1800, cfg.SessionTTLSeconds)
		assert.Equal(t, 30, cfg.AuditRetentionDays)
		assert.Equal(t, 20, cfg.RateLimitPerMin)
		assert.Equal(t, "il", cfg.SearchCountry)
		assert.Equal(t, "USD", cfg.SearchCurrency)
	})

	t.Run("missing required value fails", func(t *testing.T) {
		setRequired(t)
		// t.Setenv registered the restore; unset to simulate absence.
		os.Unsetenv("TELEGRAM_TOKEN")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("custom values override defaults", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PORT", "9090")
		t.Setenv("SESSION_TTL_SECONDS", "600")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, 600, cfg.SessionTTLSeconds)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects non-positive session ttl", func(t *testing.T) {
		cfg := &Config{SessionTTLSeconds: 0, RecommendTimeoutSeconds: 60}
		require.Error(t, cfg.Validate(false))
	})

	t.Run("accepts sane values", func(t *testing.T) {
		cfg := &Config{SessionTTLSeconds: 1800, RecommendTimeoutSeconds: 60}
		require.NoError(t, cfg.Validate(false))
	})
}
