package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultEnvironment, cfg.Environment)
	assert.Equal(t, DefaultTimeoutSecs, cfg.TimeoutSecs)
	assert.NotEmpty(t, cfg.TokenPath)
	assert.NotEmpty(t, cfg.SessionPath)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "https://api.example.com",
		"environment": "production",
		"pipeline_key": "pl-77",
		"box_stage_key": "5001"
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "pl-77", cfg.PipelineKey)
	assert.Equal(t, "5001", cfg.BoxStageKey)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url": "https://file.example.com"}`), 0o644))
	t.Setenv("SOURCER_API_BASE_URL", "https://env.example.com")
	t.Setenv("SOURCER_ENV", "staging")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, "staging", cfg.Environment)
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("SOURCER_ENV", "moon-base")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
