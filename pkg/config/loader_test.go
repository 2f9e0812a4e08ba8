package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.PrimaryModel)
	assert.Equal(t, 80, cfg.Pool.KPerBand)
}

func TestLoad_YAMLFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planner.yaml")
	content := []byte(`
llm:
  primary_model: custom-model
  timeout_seconds: 45
pool:
  k_per_band: 120
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-model", cfg.LLM.PrimaryModel)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 120, cfg.Pool.KPerBand)
	// Untouched fields keep their defaults.
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.FallbackModel)
}

func TestLoad_EnvOverridesWinOverYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  primary_model: from-yaml\n"), 0o600))

	t.Setenv("LLM_PRIMARY_MODEL", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLM.PrimaryModel)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load("/nonexistent/path/planner.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().LLM.PrimaryModel, cfg.LLM.PrimaryModel)
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [this is not a map"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
