package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lista/internal/models"
)

var exportedAt = time.Date(2025, 2, 3, 4, 5, 6, 0, time.Local)

func sampleTasks() []models.Task {
	return []models.Task{
		{Timestamp: "2025-01-01 09:00:00", Priority: models.PriorityHigh, Status: models.StatusPending, Description: "Pay rent"},
		{Timestamp: "2025-01-01 10:00:00", Priority: models.PriorityLow, Status: models.StatusCompleted, Description: "Buy milk"},
		{Timestamp: "2025-01-01 11:00:00", Priority: models.PriorityMedium, Status: models.StatusPending, Description: "Call \"Bob\", maybe"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"txt":      FormatText,
		"TEXT":     FormatText,
		".csv":     FormatCSV,
		"json":     FormatJSON,
		"markdown": FormatMarkdown,
		"md":       FormatMarkdown,
		"db":       FormatSQLite,
		"sqlite":   FormatSQLite,
	}
	for input, want := range tests {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatForPath(t *testing.T) {
	f, err := FormatForPath("/tmp/report.CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = FormatForPath("/tmp/report")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestTextReport(t *testing.T) {
	want := "=== TODO LIST EXPORT ===\n" +
		"Export Date: 2025-02-03 04:05:06\n\n" +
		"PENDING TASKS:\n" +
		strings.Repeat("-", 50) + "\n" +
		"1. [High] Pay rent (Created: 2025-01-01 09:00:00)\n" +
		"2. [Medium] Call \"Bob\", maybe (Created: 2025-01-01 11:00:00)\n" +
		"\nCOMPLETED TASKS:\n" +
		strings.Repeat("-", 50) + "\n" +
		"1. [Low] Buy milk (Created: 2025-01-01 10:00:00)\n"

	assert.Equal(t, want, TextReport(sampleTasks(), exportedAt))
}

func TestTextReport_OmitsEmptySections(t *testing.T) {
	report := TextReport(sampleTasks()[:1], exportedAt)
	assert.Contains(t, report, "PENDING TASKS:")
	assert.NotContains(t, report, "COMPLETED TASKS:")

	empty := TextReport(nil, exportedAt)
	assert.Equal(t, "=== TODO LIST EXPORT ===\nExport Date: 2025-02-03 04:05:06\n\n", empty)
}

func TestCSV(t *testing.T) {
	data, err := CSV(sampleTasks())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, CSVHeader, rows[0])
	assert.Equal(t, []string{"2025-01-01 11:00:00", "Medium", "Pending", "Call \"Bob\", maybe"}, rows[3])
}

func TestJSON(t *testing.T) {
	data, err := JSON(sampleTasks())
	require.NoError(t, err)

	var records []Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 3)
	assert.Equal(t, Record{Timestamp: "2025-01-01 10:00:00", Priority: "Low", Status: "Completed", Task: "Buy milk"}, records[1])
}

func TestJSON_EmptyIsArray(t *testing.T) {
	data, err := JSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestMarkdownReport(t *testing.T) {
	md := MarkdownReport(sampleTasks(), exportedAt)

	assert.Contains(t, md, "# To-do list")
	assert.Contains(t, md, "**3** total, **2** pending, **1** completed (33% done)")
	assert.Contains(t, md, "## Pending")
	assert.Contains(t, md, "- [ ] **High** Pay rent")
	assert.Contains(t, md, "## Completed")
	assert.Contains(t, md, "- [x] ~~Buy milk~~")
}

func TestMarkdownReport_Escapes(t *testing.T) {
	tasks := []models.Task{{Priority: models.PriorityLow, Status: models.StatusPending, Description: "fix *all* the_things"}}
	md := MarkdownReport(tasks, exportedAt)
	assert.Contains(t, md, `fix \*all\* the\_things`)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []Format{FormatText, FormatCSV, FormatJSON, FormatMarkdown} {
		path := filepath.Join(dir, "sub", "out."+string(f))
		require.NoError(t, WriteFile(context.Background(), path, f, sampleTasks(), exportedAt), f)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		want, err := Render(f, sampleTasks(), exportedAt)
		require.NoError(t, err)
		assert.Equal(t, want, data, f)
	}
}

func TestRender_SQLiteHasNoTextForm(t *testing.T) {
	_, err := Render(FormatSQLite, sampleTasks(), exportedAt)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
