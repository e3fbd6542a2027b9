package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ipconv/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, int64(1024), cfg.Live.ReadLimit)
	require.Equal(t, 30*time.Second, cfg.Live.PingInterval)
	require.Empty(t, cfg.Auth.PublicKey)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
environment: production
logLevel: warn
http:
  addr: ":9090"
  allowedOrigins:
    - https://tools.example.com
  enablePprof: true
live:
  pingInterval: 5s
gracefulShutdownTimeout: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://tools.example.com"}, cfg.HTTP.AllowedOrigins)
	require.True(t, cfg.HTTP.EnablePprof)
	require.Equal(t, 5*time.Second, cfg.Live.PingInterval)
	require.Equal(t, 3*time.Second, cfg.GracefulShutdownTimeout)
	// untouched keys keep their defaults
	require.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("LIVE_READ_LIMIT", "512")

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, int64(512), cfg.Live.ReadLimit)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not, a, map"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
