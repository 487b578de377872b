package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary
		Accent: "#957FB8", // oniViolet

		// Priorities
		High:      "#FF5D62", // peachRed
		Medium:    "#E6C384", // carpYellow
		Low:       "#98BB6C", // springGreen
		Completed: "#727169", // fujiGray

		// UI elements
		Border:     "#54546D", // sumiInk6
		SelectedBg: "#223249", // waveBlue1

		// Text
		Title:  "#7E9CD8", // crystalBlue
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite

		// Notifications
		InfoFg:    "#658594", // dragonBlue
		InfoBg:    "#252535", // winterBlue
		WarningFg: "#FF9E3B", // roninYellow
		WarningBg: "#49443C", // winterYellow
		ErrorFg:   "#E82424", // samuraiRed
		ErrorBg:   "#43242B", // winterRed
	}
}
