package colors

import "testing"

func TestApplyDefaults_UsesPreset(t *testing.T) {
	c := ColorScheme{Preset: "monochrome", High: "#123456"}
	c.ApplyDefaults()

	if c.High != "#123456" {
		t.Errorf("Expected custom High to survive, got %s", c.High)
	}
	if c.Medium != Monochrome().Medium {
		t.Errorf("Expected Medium from monochrome preset, got %s", c.Medium)
	}
}

func TestApplyDefaults_EmptyPresetIsDefault(t *testing.T) {
	var c ColorScheme
	c.ApplyDefaults()

	if c.Preset != "default" {
		t.Errorf("Expected preset 'default', got %q", c.Preset)
	}
	if c.Accent != Default().Accent {
		t.Errorf("Expected default accent, got %s", c.Accent)
	}
}

func TestGetPreset_Unknown(t *testing.T) {
	if GetPreset("neon").Preset != "default" {
		t.Error("Unknown preset should fall back to default")
	}
	if GetPreset("wave").Preset != "wave" {
		t.Error("Expected wave preset")
	}
}

func TestOverride(t *testing.T) {
	c := *Default()
	c.Override(ColorScheme{Accent: "#000000"})

	if c.Accent != "#000000" {
		t.Errorf("Expected overridden accent, got %s", c.Accent)
	}
	if c.High != Default().High {
		t.Errorf("Expected untouched High, got %s", c.High)
	}
}
