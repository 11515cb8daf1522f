package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yml"))
	require.Error(t, err, "explicit missing file must fail")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 2333, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "data", cfg.DataDir)
	assert.True(t, cfg.RecoveryLogin)
	assert.True(t, cfg.IsDev())
	assert.True(t, cfg.UseFileStore())
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yml")
	content := `
port: 8080
env: production
dsn: "user:pass@tcp(localhost:3306)/gigspace"
jwt_secret: supersecret
recovery_login: false
allowed_origins:
  - gigspace.com
mail:
  from: "Studio <hello@gigspace.com>"
ai:
  provider: anthropic
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.False(t, cfg.UseFileStore())
	assert.False(t, cfg.RecoveryLogin)
	assert.Equal(t, []string{"gigspace.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "Studio <hello@gigspace.com>", cfg.Mail.From)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
}

func TestLoadRejectsUnknownYAMLKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("prot: 8080\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\n"), 0o600))

	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "prod")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
}

func TestInvalidPortRejected(t *testing.T) {
	t.Setenv("PORT", "70000")
	_, err := Load("")
	assert.Error(t, err)
}

func TestNormalizeEnv(t *testing.T) {
	assert.Equal(t, "production", normalizeEnv("PROD"))
	assert.Equal(t, "production", normalizeEnv(" production "))
	assert.Equal(t, "development", normalizeEnv("staging"))
	assert.Equal(t, "development", normalizeEnv(""))
}
