package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5001, cfg.Listen.Port)
	assert.Equal(t, "litellm", cfg.Router.Name)
	assert.Equal(t, 5, cfg.Agents.PoolSize)
	assert.Equal(t, 10, cfg.Agents.TimeoutSec)
	assert.Equal(t, "claude-3-haiku-20240307", cfg.Summary.Model)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen:
  port: 8080
router:
  base_url: http://litellm:4000
agents:
  pool_size: 2
  timeout_sec: 3
log_level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Listen.Port)
	assert.Equal(t, "http://litellm:4000", cfg.Router.BaseURL)
	assert.Equal(t, 2, cfg.Agents.PoolSize)
	assert.Equal(t, 3, cfg.Agents.TimeoutSec)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched values keep their defaults.
	assert.Equal(t, "sk-1234", cfg.Router.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LITELLM_BASE_URL", "http://router.local:4000")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("THREADMESH_PORT", "9000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://router.local:4000", cfg.Router.BaseURL)
	assert.Equal(t, "sk-ant-test", cfg.Anthropic.APIKey)
	assert.Equal(t, 9000, cfg.Listen.Port)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("router:\n  base_url: http://from-file\n"), 0o600))
	t.Setenv("LITELLM_BASE_URL", "http://from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.Router.BaseURL)
}
