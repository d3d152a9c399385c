package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STRICT_OVERLAP", "")
	t.Setenv("STUDIO_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.StrictOverlap)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, float64(100), cfg.Studio.PriceFor(4))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STRICT_OVERLAP", "false")
	t.Setenv("LOCK_BACKEND", "Redis")
	t.Setenv("RATE_LIMIT_BURST", "3")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("STUDIO_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.StrictOverlap)
	assert.Equal(t, "redis", cfg.LockBackend)
	assert.Equal(t, 3, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadStudio(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studio.yaml")
	t.Setenv("STUDIO_NOTIFY", "owner@example.com")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Wave Room
notify_email: ${STUDIO_NOTIFY}
pricing:
  2: 60
  4: 110
`), 0o600))

	studio, err := LoadStudio(path)
	require.NoError(t, err)

	assert.Equal(t, "Wave Room", studio.Name)
	assert.Equal(t, "owner@example.com", studio.NotifyEmail)
	assert.Equal(t, float64(110), studio.PriceFor(4))
	assert.Equal(t, float64(0), studio.PriceFor(6))
}

func TestLoadStudio_Missing(t *testing.T) {
	_, err := LoadStudio(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
