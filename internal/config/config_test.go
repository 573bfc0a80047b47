package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MCP_SSE_URL", "")
	t.Setenv("OPENAI_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	require.Equal(t, "http://127.0.0.1:8765/sse", cfg.ServerURL)
	require.Empty(t, cfg.Model)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MCP_SSE_URL", "http://example.com:9000/sse")
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://example.com:9000/sse", cfg.ServerURL)
	require.Equal(t, "gpt-4o", cfg.Model)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
}
