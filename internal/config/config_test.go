package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("AUTH_SERVICE_URL", "http://auth.local/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://auth.local", cfg.AuthServiceURL)
	assert.Equal(t, SourceSeed, cfg.CatalogSource)
	assert.Equal(t, 6, cfg.DefaultPageSize)
	assert.Equal(t, 30*time.Minute, cfg.ViewIdleTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("AUTH_SERVICE_URL", "http://auth.local")
	t.Setenv("CATALOG_SOURCE", "Typesense")
	t.Setenv("CATALOG_LOAD_DELAY", "250ms")
	t.Setenv("DEFAULT_PAGE_SIZE", "3")
	t.Setenv("VIEW_MAX_SESSIONS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://algoviz.dev/, ,https://www.algoviz.dev")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, SourceTypesense, cfg.CatalogSource)
	assert.Equal(t, 250*time.Millisecond, cfg.CatalogLoadDelay)
	assert.Equal(t, 3, cfg.DefaultPageSize)
	assert.Equal(t, 10000, cfg.ViewMaxSessions, "valor inválido cai no default")
	assert.Equal(t, []string{"https://algoviz.dev", "https://www.algoviz.dev"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("missing auth service", func(t *testing.T) {
		t.Setenv("AUTH_SERVICE_URL", "")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown catalog source", func(t *testing.T) {
		t.Setenv("AUTH_SERVICE_URL", "http://auth.local")
		t.Setenv("CATALOG_SOURCE", "postgres")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("page size out of range", func(t *testing.T) {
		t.Setenv("AUTH_SERVICE_URL", "http://auth.local")
		t.Setenv("DEFAULT_PAGE_SIZE", "500")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestLoad_SkipsValidation(t *testing.T) {
	t.Setenv("AUTH_SERVICE_URL", "")
	t.Setenv("TYPESENSE_HOST", "search.internal")

	cfg := Load()
	assert.Equal(t, "http://search.internal:8108", cfg.TypesenseURL())
	assert.Error(t, cfg.Validate())
}
