package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Root)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.False(t, cfg.Listing.IncludeHidden)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ARBOR_ROOT", "/srv/data")
	t.Setenv("ARBOR_LOG_LEVEL", "debug")
	t.Setenv("ARBOR_LOG_DEV", "true")
	t.Setenv("ARBOR_SHOW_HIDDEN", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/data", cfg.Root)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.True(t, cfg.Listing.IncludeHidden)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("ARBOR_LOG_DEV", "not-a-bool")

	cfg := LoadOrDefault()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}
