package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"addr": ":9090",
		"database_url": "postgres://localhost/growscore",
		"api_key": "test-key",
		"use_browser": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://localhost/growscore", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := &Config{Addr: ":8080"}
	assert.NoError(t, valid.Validate())

	hostPort := &Config{Addr: "0.0.0.0:8080"}
	assert.NoError(t, hostPort.Validate())

	bad := &Config{Addr: "8080"}
	assert.Error(t, bad.Validate())
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{Addr: ":9000"}
	defaults := Config{
		Addr:        ":8080",
		DatabaseURL: "postgres://localhost/growscore",
		APIKey:      "default-key",
		LLMModel:    "gemini-2.5-flash",
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, ":9000", merged.Addr, "explicit value wins")
	assert.Equal(t, "postgres://localhost/growscore", merged.DatabaseURL)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "gemini-2.5-flash", merged.LLMModel)
}
