package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.TMDB.APIKey)
	assert.False(t, cfg.Options.Validate)
	assert.Equal(t, []string{"dat", "inf", "pdx", "txt"}, cfg.Options.ExcludedExtensions)
	assert.Contains(t, cfg.Options.SupportedExtensions, "mkv")
	assert.Contains(t, cfg.Options.SupportedExtensions, "mp4")
	assert.NotContains(t, cfg.Options.SupportedExtensions, "txt")
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestEnvOverridesAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "primary-key")
	t.Setenv("TMDB_KEY", "fallback-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "primary-key", cfg.TMDB.APIKey)
}

func TestEnvFallbackAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("TMDB_KEY", "fallback-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fallback-key", cfg.TMDB.APIKey)
}

func TestToTOML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TMDB.APIKey = "secret"
	cfg.TMDB.Language = "en-GB"
	cfg.Options.Validate = true

	rendered := cfg.ToTOML()

	assert.Contains(t, rendered, "[tmdb]")
	assert.Contains(t, rendered, `api_key = "secret"`)
	assert.Contains(t, rendered, `language = "en-GB"`)
	assert.Contains(t, rendered, "[options]")
	assert.Contains(t, rendered, "validate = true")
	assert.Contains(t, rendered, `excluded_extensions = ["dat", "inf", "pdx", "txt"]`)
	assert.Contains(t, rendered, "[logging]")
	assert.Contains(t, rendered, `level = "info"`)
}

func TestQuoteList(t *testing.T) {
	assert.Equal(t, `"a", "b"`, quoteList([]string{"a", "b"}))
	assert.Equal(t, "", quoteList(nil))
}
