package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_key": "key-123",
		"search_cx": "cx-456",
		"use_browser": true
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, "cx-456", cfg.SearchCX)
	assert.True(t, cfg.UseBrowser)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GOOGLE_CSE_ID", "env-cx")

	cfg := &Config{APIKey: "explicit-key"}
	cfg.FromEnv()

	// Explicit values win over the environment.
	assert.Equal(t, "explicit-key", cfg.APIKey)
	assert.Equal(t, "env-cx", cfg.SearchCX)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "mine"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey:      "theirs",
		DatabaseURL: "postgres://localhost/jobs",
	})

	assert.Equal(t, "mine", merged.APIKey)
	assert.Equal(t, "postgres://localhost/jobs", merged.DatabaseURL)
}
