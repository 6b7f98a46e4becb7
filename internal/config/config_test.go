package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "memory", cfg.Store.Driver)
	require.Equal(t, time.Duration(0), cfg.Store.Latency)
	require.Equal(t, "http://localhost:8080", cfg.Signing.BaseURL)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
store:
  driver: sqlite
  path: /var/lib/fieldbook/data.db
signing:
  base_url: https://fieldbook.example.com
log:
  level: debug
`), 0o600))
	t.Setenv("FIELDBOOK_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, "/var/lib/fieldbook/data.db", cfg.Store.Path)
	require.Equal(t, "https://fieldbook.example.com", cfg.Signing.BaseURL)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600))
	t.Setenv("FIELDBOOK_CONFIG_PATH", path)
	t.Setenv("FIELDBOOK_SERVER_PORT", "7070")
	t.Setenv("FIELDBOOK_STORE_LATENCY", "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, 250*time.Millisecond, cfg.Store.Latency)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("FIELDBOOK_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("FIELDBOOK_STORE_DRIVER", "postgres")
	_, err := Load()
	require.Error(t, err)
}
