package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeFileLoading(t *testing.T) {
	dir := isolate(t)

	themeFile := filepath.Join(dir, "lista-theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  high: "#00FF00"
  low: "#0000FF"
`)
	require.NoError(t, os.WriteFile(themeFile, themeContent, 0o644))
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load()
	require.NoError(t, err)

	// Verify theme was merged
	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.High)
	assert.Equal(t, "#0000FF", cfg.ColorScheme.Low)

	// Verify other colors still have defaults
	assert.Equal(t, DefaultColorScheme().Medium, cfg.ColorScheme.Medium)
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvThemeFile, filepath.Join(dir, "nope.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultColorScheme().Accent, cfg.ColorScheme.Accent)
}
