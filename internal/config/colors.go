package config

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/lista/internal/config/colors"
)

// Presets are the built-in theme names accepted in theme.preset
var Presets = []string{"default", "monochrome", "wave"}

// ColorSchemeFor returns a copy of a built-in theme
func ColorSchemeFor(preset string) colors.ColorScheme {
	return *colors.GetPreset(preset)
}

// DefaultColorScheme returns the theme used when none is configured
func DefaultColorScheme() colors.ColorScheme {
	return ColorSchemeFor("default")
}

func validatePreset(preset string) error {
	if preset == "" || slices.Contains(Presets, preset) {
		return nil
	}
	return fmt.Errorf("theme.preset: unknown preset %q (must be one of %v)", preset, Presets)
}
