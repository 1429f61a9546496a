package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://api.tractionhq.io", cfg.API.URL)
	require.Equal(t, "traction.db", cfg.Storage.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRACTION_API_URL", "https://staging.example.com")
	t.Setenv("TRACTION_TENANT", "acme")
	t.Setenv("TRACTION_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://staging.example.com", cfg.API.URL)
	require.Equal(t, "acme", cfg.API.Tenant)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api:\n  url: https://onprem.example.com\nstorage:\n  path: /tmp/t.db\n"), 0o600))
	t.Setenv("TRACTION_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://onprem.example.com", cfg.API.URL)
	require.Equal(t, "/tmp/t.db", cfg.Storage.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("TRACTION_CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	require.Error(t, err)
}
