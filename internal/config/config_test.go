package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"yfmcp/internal/config"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, config.TransportStdio, cfg.Transport)
	require.Equal(t, "0.0.0.0", cfg.HTTPHost)
	require.Equal(t, 3000, cfg.HTTPPort)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.EnableAuth)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("YF_MCP_TRANSPORT", "http")
	t.Setenv("YF_MCP_HTTP_PORT", "8080")
	t.Setenv("YF_MCP_LOG_LEVEL", "debug")
	t.Setenv("YF_MCP_HTTP_CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)

	require.Equal(t, config.TransportHTTP, cfg.Transport)
	require.Equal(t, 8080, cfg.HTTPPort)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestValidateRejectsUnknownTransport(t *testing.T) {
	t.Setenv("YF_MCP_TRANSPORT", "websocket")

	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	require.Error(t, cfg.Validate())
}
