package task

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/export"
	clitest "github.com/thenoetrevino/lista/internal/testutil/cli"
)

func TestExport(t *testing.T) {
	a := setupWithTasks(t)
	dir := t.TempDir()

	t.Run("csv from extension", func(t *testing.T) {
		path := filepath.Join(dir, "todos.csv")

		output, err := clitest.ExecuteCLICommand(t, a, ExportCmd(), []string{path})
		require.NoError(t, err)
		assert.Contains(t, output, "Exported 3 tasks")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Timestamp,Priority,Status,Task", lines[0])
		assert.Equal(t, "2025-06-01 12:30:00,Medium,Pending,Buy milk", lines[1])
	})

	t.Run("format flag wins", func(t *testing.T) {
		path := filepath.Join(dir, "todos.out")

		output, err := clitest.ExecuteCLICommand(t, a, ExportCmd(), []string{path, "--format=json", "--json"})
		require.NoError(t, err)
		result := clitest.ParseJSON(t, output)
		assert.Equal(t, "json", result["format"])
		assert.Equal(t, float64(3), result["count"])

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"task": "Pay rent"`)
	})

	t.Run("configured format without extension", func(t *testing.T) {
		path := filepath.Join(dir, "report")

		_, err := clitest.ExecuteCLICommand(t, a, ExportCmd(), []string{path, "--quiet"})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "=== TODO LIST EXPORT ==="))
		assert.Contains(t, string(data), "PENDING TASKS:")
		assert.Contains(t, string(data), "COMPLETED TASKS:")
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(dir, "todos.db")

		_, err := clitest.ExecuteCLICommand(t, a, ExportCmd(), []string{path, "--quiet"})
		require.NoError(t, err)

		tasks, err := database.ReadTasks(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "Water plants", tasks[2].Description)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, a, ExportCmd(), []string{filepath.Join(dir, "todos.xlsx"), "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		flag       string
		path       string
		want       export.Format
		wantErr    bool
	}{
		{"flag", "txt", "csv", "a.json", export.FormatCSV, false},
		{"extension", "txt", "", "a.md", export.FormatMarkdown, false},
		{"configured", "json", "", "a", export.FormatJSON, false},
		{"nothing configured", "", "", "a", export.FormatText, false},
		{"bad flag", "", "xml", "a.csv", "", true},
		{"bad extension", "", "", "a.xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFormat(tt.configured, tt.flag, tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, export.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
