package colors

// Default returns the default color scheme (purple accent, red/orange/green priorities)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Priorities
		High:      "#FF5F5F",
		Medium:    "#FFAF00",
		Low:       "#5FD75F",
		Completed: "#808080",

		// UI elements
		Border:     "#5F87D7",
		SelectedBg: "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
