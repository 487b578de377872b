package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask        string `yaml:"add_task"`
	EditTask       string `yaml:"edit_task"`
	DeleteTask     string `yaml:"delete_task"`
	ToggleStatus   string `yaml:"toggle_status"`
	CyclePriority  string `yaml:"cycle_priority"`
	ClearCompleted string `yaml:"clear_completed"`

	// Views
	Search      string `yaml:"search"`
	CycleFilter string `yaml:"cycle_filter"`
	Refresh     string `yaml:"refresh"`

	// Files
	Backup  string `yaml:"backup"`
	Restore string `yaml:"restore"`

	// Navigation
	PrevTask  string `yaml:"prev_task"`
	NextTask  string `yaml:"next_task"`
	FirstTask string `yaml:"first_task"`
	LastTask  string `yaml:"last_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:        "a",
		EditTask:       "e",
		DeleteTask:     "d",
		ToggleStatus:   " ",
		CyclePriority:  "p",
		ClearCompleted: "C",

		// Views
		Search:      "/",
		CycleFilter: "f",
		Refresh:     "r",

		// Files
		Backup:  "b",
		Restore: "R",

		// Navigation
		PrevTask:  "k",
		NextTask:  "j",
		FirstTask: "g",
		LastTask:  "G",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ToggleStatus, defaults.ToggleStatus)
	fill(&k.CyclePriority, defaults.CyclePriority)
	fill(&k.ClearCompleted, defaults.ClearCompleted)
	fill(&k.Search, defaults.Search)
	fill(&k.CycleFilter, defaults.CycleFilter)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.Backup, defaults.Backup)
	fill(&k.Restore, defaults.Restore)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.FirstTask, defaults.FirstTask)
	fill(&k.LastTask, defaults.LastTask)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
