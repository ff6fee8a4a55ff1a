package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCLIConfigFrom(t *testing.T) {
	t.Setenv("CODERWS_SERVER_URL", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serverURL: https://gerrit.example.com\nplugin: custom\ntimeout: 5s\n"), 0o644))

	cfg, err := LoadCLIConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://gerrit.example.com", cfg.ServerURL)
	assert.Equal(t, "custom", cfg.Plugin)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadCLIConfigFrom_EnvOverride(t *testing.T) {
	t.Setenv("CODERWS_SERVER_URL", "https://env.example.com")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serverURL: https://file.example.com\n"), 0o644))

	cfg, err := LoadCLIConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.ServerURL)
}

func TestLoadCLIConfigFrom_MissingFile(t *testing.T) {
	t.Setenv("CODERWS_SERVER_URL", "")

	cfg, err := LoadCLIConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
}

func TestLoadCLIConfigFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("serverURL: [\n"), 0o644))

	_, err := LoadCLIConfigFrom(path)
	assert.Error(t, err)
}
