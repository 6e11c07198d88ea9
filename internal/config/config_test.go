package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "CONTENT_DIR", "CONTENT_EXTENSION", "RATE_LIMIT_BACKEND", "REDIS_DB", "LOG_MAX_FILES", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "content", cfg.ContentDir)
	assert.Equal(t, ".mdx", cfg.ContentExtension)
	assert.Equal(t, "memory", cfg.RateLimitBackend)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 10, cfg.LogMaxFiles)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOriginList())
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.Warnings())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_BACKEND", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOG_MAX_FILES", "not-a-number")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")

	cfg := Load()
	assert.Equal(t, "redis", cfg.RateLimitBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 10, cfg.LogMaxFiles)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOriginList())
	assert.Equal(t, "10.0.0.0/8", cfg.TrustedProxies)
}

func TestWarnings_ProdDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "prod")
	for _, key := range []string{"ADMIN_ID", "ADMIN_PASSWORD", "ADMIN_TOKEN", "RENDER_UNSAFE_HTML"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Len(t, cfg.Warnings(), 2)

	t.Setenv("ADMIN_PASSWORD", "long-random-password")
	t.Setenv("ADMIN_TOKEN", "long-random-token")
	assert.Empty(t, Load().Warnings())
}

func TestSetupLogFile_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"server-2024-01-01T00-00-00.log", "server-2024-01-02T00-00-00.log", "server-2024-01-03T00-00-00.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	f, err := SetupLogFile(dir, 2)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	files, err := filepath.Glob(filepath.Join(dir, "server-*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.NoFileExists(t, filepath.Join(dir, "server-2024-01-01T00-00-00.log"))
}
