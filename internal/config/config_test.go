package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "closet-manager", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := []byte(`
[app]
port = 9090

[mysql]
user = "closet"
password = "pw"
db = "closetdb"

[upload]
dir = "/var/lib/closet/uploads"
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "/var/lib/closet/uploads", cfg.Upload.Dir)
	assert.Contains(t, cfg.MySQLDSN(), "closet:pw@tcp(127.0.0.1:3306)/closetdb")
	// Untouched sections fall back to defaults.
	assert.Equal(t, "change-me-in-production", cfg.Auth.JWTSecret)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("APP_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("UPLOAD_DIR", "/tmp/closet")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.App.Port)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "/tmp/closet", cfg.Upload.Dir)
}

func TestMalformedEnvIntFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("APP_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
}
