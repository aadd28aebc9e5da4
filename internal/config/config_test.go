package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"RELEASING", "NOT_YET_RELEASED"}, cfg.Query.Status)
	assert.Equal(t, []string{"TV", "MOVIE", "TV_SHORT", "OVA", "ONA"}, cfg.Query.Format)
	assert.Equal(t, 2024, cfg.Query.Year)
	assert.Equal(t, "SUMMER", cfg.Query.Season)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Output.Clipboard)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, v, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("query:\n  year: 2025\n  season: WINTER\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, _, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2025, cfg.Query.Year)
	assert.Equal(t, "WINTER", cfg.Query.Season)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep their defaults
	assert.Equal(t, []string{"RELEASING", "NOT_YET_RELEASED"}, cfg.Query.Status)
	assert.True(t, cfg.Output.Clipboard)
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query: [not a map"), 0644))

	_, _, err := Load(path)
	assert.Error(t, err)
}

func TestSaveDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, SaveDefaultConfig(path))

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Query, cfg.Query)
}

func TestGetConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	assert.Equal(t, filepath.Join("/tmp/xdg-test", "anichart"), GetConfigDir())
}
