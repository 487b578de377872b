package state

import "github.com/thenoetrevino/lista/internal/models"

// Mode represents the current interaction mode of the TUI.
type Mode int

const (
	NormalMode         Mode = iota // Default navigation mode
	AddMode                        // Typing a new task
	EditMode                       // Editing the selected task's text
	SearchMode                     // Typing a live search term
	DeleteConfirmMode              // Confirming task deletion
	ClearConfirmMode               // Confirming removal of completed tasks
	RestoreConfirmMode             // Confirming restore from backup
	HelpMode                       // Displaying the full help
)

// IsInput reports whether the mode reads text into the input line
func (m Mode) IsInput() bool {
	return m == AddMode || m == EditMode || m == SearchMode
}

// IsConfirm reports whether the mode waits for a yes/no answer
func (m Mode) IsConfirm() bool {
	return m == DeleteConfirmMode || m == ClearConfirmMode || m == RestoreConfirmMode
}

// Filter restricts the list to one status
type Filter int

const (
	FilterAll Filter = iota
	FilterPending
	FilterCompleted
)

// Next cycles All -> Pending -> Completed -> All
func (f Filter) Next() Filter {
	return (f + 1) % 3
}

// Status returns the status the filter selects, or "" for all
func (f Filter) Status() models.Status {
	switch f {
	case FilterPending:
		return models.StatusPending
	case FilterCompleted:
		return models.StatusCompleted
	}
	return ""
}

func (f Filter) String() string {
	switch f {
	case FilterPending:
		return "Pending"
	case FilterCompleted:
		return "Completed"
	}
	return "All"
}

// UIState manages the user interface state of the list view.
type UIState struct {
	mode     Mode
	filter   Filter
	search   string
	selected int // position in the visible (filtered) list
	offset   int // first visible row

	windowWidth  int
	windowHeight int
}

// NewUIState creates a new UIState in normal mode showing all tasks.
func NewUIState() *UIState {
	return &UIState{
		mode:   NormalMode,
		filter: FilterAll,
	}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Filter returns the active status filter.
func (s *UIState) Filter() Filter {
	return s.filter
}

// SetFilter updates the status filter and resets the selection.
func (s *UIState) SetFilter(f Filter) {
	s.filter = f
	s.selected = 0
	s.offset = 0
}

// Search returns the active search term.
func (s *UIState) Search() string {
	return s.search
}

// SetSearch updates the search term and resets the selection.
func (s *UIState) SetSearch(term string) {
	s.search = term
	s.selected = 0
	s.offset = 0
}

// Selected returns the selected row in the visible list.
func (s *UIState) Selected() int {
	return s.selected
}

// Offset returns the first visible row.
func (s *UIState) Offset() int {
	return s.offset
}

// Select moves the selection to row, clamped to [0, count).
func (s *UIState) Select(row, count int) {
	switch {
	case count == 0:
		row = 0
	case row < 0:
		row = 0
	case row >= count:
		row = count - 1
	}
	s.selected = row
	s.ensureVisible()
}

// Clamp keeps the selection inside a list of count rows.
func (s *UIState) Clamp(count int) {
	s.Select(s.selected, count)
}

// SetWindowSize records the terminal size.
func (s *UIState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
	s.ensureVisible()
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.windowWidth
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.windowHeight
}

// ListHeight is the number of task rows that fit on screen.
func (s *UIState) ListHeight() int {
	// header, stats, blank, input, blank, status bar, help
	const chrome = 7
	if s.windowHeight <= chrome {
		return 1
	}
	return s.windowHeight - chrome
}

// ensureVisible scrolls so that the selected row is on screen.
func (s *UIState) ensureVisible() {
	height := s.ListHeight()
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+height {
		s.offset = s.selected - height + 1
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
