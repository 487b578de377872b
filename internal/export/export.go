// Package export renders task lists into report and table formats.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/models"
)

// Format names an export format
type Format string

const (
	FormatText     Format = "txt"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatSQLite   Format = "sqlite"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatCSV, FormatJSON, FormatMarkdown, FormatSQLite}

// ErrUnknownFormat is returned for a format name outside Formats
var ErrUnknownFormat = fmt.Errorf("unknown export format (must be: %s)", formatList())

// DateLayout is used for the export date line of the reports
const DateLayout = models.TimestampLayout

// ParseFormat maps a name to a Format, accepting a few common aliases
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "txt", "text":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "sqlite", "db", "sqlite3":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatForPath infers the format from the file extension of path
func FormatForPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Render produces the bytes of a text-based format. SQLite has no
// in-memory form and is handled by WriteFile.
func Render(format Format, tasks []models.Task, exportedAt time.Time) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(TextReport(tasks, exportedAt)), nil
	case FormatMarkdown:
		return []byte(MarkdownReport(tasks, exportedAt)), nil
	case FormatCSV:
		return CSV(tasks)
	case FormatJSON:
		return JSON(tasks)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteFile writes tasks to path in the given format, replacing any existing file
func WriteFile(ctx context.Context, path string, format Format, tasks []models.Task, exportedAt time.Time) error {
	if format == FormatSQLite {
		return database.WriteTasks(ctx, path, tasks)
	}

	data, err := Render(format, tasks, exportedAt)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ============================================================================
// TEXT REPORTS
// ============================================================================

const sectionRule = "--------------------------------------------------"

// TextReport renders the sectioned plain-text report
func TextReport(tasks []models.Task, exportedAt time.Time) string {
	pending, completed := split(tasks)

	var b strings.Builder
	b.WriteString("=== TODO LIST EXPORT ===\n")
	fmt.Fprintf(&b, "Export Date: %s\n\n", exportedAt.Format(DateLayout))

	if len(pending) > 0 {
		b.WriteString("PENDING TASKS:\n")
		b.WriteString(sectionRule + "\n")
		writeNumbered(&b, pending)
	}
	if len(completed) > 0 {
		b.WriteString("\nCOMPLETED TASKS:\n")
		b.WriteString(sectionRule + "\n")
		writeNumbered(&b, completed)
	}
	return b.String()
}

// MarkdownReport renders the same sections as TextReport in markdown
func MarkdownReport(tasks []models.Task, exportedAt time.Time) string {
	pending, completed := split(tasks)
	stats := summarize(tasks)

	var b strings.Builder
	b.WriteString("# To-do list\n\n")
	fmt.Fprintf(&b, "_Exported %s_\n\n", exportedAt.Format(DateLayout))
	fmt.Fprintf(&b, "**%d** total, **%d** pending, **%d** completed (%.0f%% done)\n\n",
		stats.total, stats.pending, stats.completed, stats.rate())

	if len(pending) == 0 && len(completed) == 0 {
		b.WriteString("Nothing to do.\n")
		return b.String()
	}
	if len(pending) > 0 {
		b.WriteString("## Pending\n\n")
		for _, t := range pending {
			fmt.Fprintf(&b, "- [ ] **%s** %s _(created %s)_\n", t.Priority, escapeMarkdown(t.Description), t.Timestamp)
		}
		b.WriteString("\n")
	}
	if len(completed) > 0 {
		b.WriteString("## Completed\n\n")
		for _, t := range completed {
			fmt.Fprintf(&b, "- [x] ~~%s~~ _(%s, created %s)_\n", escapeMarkdown(t.Description), t.Priority, t.Timestamp)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeNumbered(b *strings.Builder, tasks []models.Task) {
	for i, t := range tasks {
		fmt.Fprintf(b, "%d. [%s] %s (Created: %s)\n", i+1, t.Priority, t.Description, t.Timestamp)
	}
}

func split(tasks []models.Task) (pending, completed []models.Task) {
	for _, t := range tasks {
		switch t.Status {
		case models.StatusPending:
			pending = append(pending, t)
		case models.StatusCompleted:
			completed = append(completed, t)
		}
	}
	return pending, completed
}

type counts struct {
	total, pending, completed int
}

func (c counts) rate() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.completed) / float64(c.total) * 100
}

func summarize(tasks []models.Task) counts {
	c := counts{total: len(tasks)}
	for _, t := range tasks {
		if t.IsCompleted() {
			c.completed++
		} else {
			c.pending++
		}
	}
	return c
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, `*`, `\*`, `_`, `\_`, "`", "\\`", `[`, `\[`, `]`, `\]`, `~`, `\~`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// ============================================================================
// TABLE FORMATS
// ============================================================================

// CSVHeader is the fixed header row of the CSV export
var CSVHeader = []string{"Timestamp", "Priority", "Status", "Task"}

// CSV renders tasks as comma-separated values with a header row
func CSV(tasks []models.Task) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if err := w.Write([]string{t.Timestamp, string(t.Priority), string(t.Status), t.Description}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Record is the JSON shape of a task
type Record struct {
	Timestamp string `json:"timestamp"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	Task      string `json:"task"`
}

// Records converts tasks into their JSON shape
func Records(tasks []models.Task) []Record {
	out := make([]Record, len(tasks))
	for i, t := range tasks {
		out[i] = Record{
			Timestamp: t.Timestamp,
			Priority:  string(t.Priority),
			Status:    string(t.Status),
			Task:      t.Description,
		}
	}
	return out
}

// JSON renders tasks as an indented JSON array
func JSON(tasks []models.Task) ([]byte, error) {
	data, err := json.MarshalIndent(Records(tasks), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return append(data, '\n'), nil
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
