package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Priority colors for pending tasks, and the color for completed ones
	High      string `yaml:"high"`
	Medium    string `yaml:"medium"`
	Low       string `yaml:"low"`
	Completed string `yaml:"completed"`

	// UI element colors
	Border     string `yaml:"border"`
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	c.MergeFrom(*GetPreset(c.Preset))
	if c.Preset == "" {
		c.Preset = "default"
	}
}

// MergeFrom copies every value of other into c where c has none
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, other.Accent)
	fill(&c.High, other.High)
	fill(&c.Medium, other.Medium)
	fill(&c.Low, other.Low)
	fill(&c.Completed, other.Completed)
	fill(&c.Border, other.Border)
	fill(&c.SelectedBg, other.SelectedBg)
	fill(&c.Title, other.Title)
	fill(&c.Subtle, other.Subtle)
	fill(&c.Normal, other.Normal)
	fill(&c.InfoFg, other.InfoFg)
	fill(&c.InfoBg, other.InfoBg)
	fill(&c.WarningFg, other.WarningFg)
	fill(&c.WarningBg, other.WarningBg)
	fill(&c.ErrorFg, other.ErrorFg)
	fill(&c.ErrorBg, other.ErrorBg)
}

// Override replaces values in c with every non-empty value of other
func (c *ColorScheme) Override(other ColorScheme) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	set(&c.Preset, other.Preset)
	set(&c.Accent, other.Accent)
	set(&c.High, other.High)
	set(&c.Medium, other.Medium)
	set(&c.Low, other.Low)
	set(&c.Completed, other.Completed)
	set(&c.Border, other.Border)
	set(&c.SelectedBg, other.SelectedBg)
	set(&c.Title, other.Title)
	set(&c.Subtle, other.Subtle)
	set(&c.Normal, other.Normal)
	set(&c.InfoFg, other.InfoFg)
	set(&c.InfoBg, other.InfoBg)
	set(&c.WarningFg, other.WarningFg)
	set(&c.WarningBg, other.WarningBg)
	set(&c.ErrorFg, other.ErrorFg)
	set(&c.ErrorBg, other.ErrorBg)
}
