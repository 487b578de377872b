package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/cli"
	"github.com/thenoetrevino/lista/internal/testutil"
	clitest "github.com/thenoetrevino/lista/internal/testutil/cli"
)

func TestListTasks(t *testing.T) {
	a := setupWithTasks(t)

	t.Run("all tasks", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, a, ListCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "Buy milk")
		assert.Contains(t, output, "Pay rent")
		assert.Contains(t, output, "Water plants")
		assert.Contains(t, output, "[✓]")
		assert.Contains(t, output, "3 shown, 3 total (2 pending, 1 completed)")
	})

	t.Run("pending only keeps store numbers", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, a, ListCmd(), []string{"--status=pending", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "1\n2\n", output)
	})

	t.Run("completed only", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, a, ListCmd(), []string{"--status=completed", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "3\n", output)
	})

	t.Run("search combined with status", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, a, ListCmd(), []string{"--status=pending", "--search=RENT", "--json"})
		require.NoError(t, err)

		result := clitest.ParseJSON(t, output)
		assert.Equal(t, float64(1), result["count"])
		tasks := result["tasks"].([]interface{})
		require.Len(t, tasks, 1)
		task := tasks[0].(map[string]interface{})
		assert.Equal(t, float64(2), task["number"])
		assert.Equal(t, "Pay rent", task["description"])
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, a, ListCmd(), []string{"--status=someday", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestListTasks_Empty(t *testing.T) {
	a := testutil.SetupTestApp(t)

	output, err := clitest.ExecuteCLICommand(t, a, ListCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks found.")

	output, err = clitest.ExecuteCLICommand(t, a, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	result := clitest.ParseJSON(t, output)
	assert.Equal(t, float64(0), result["count"])
	assert.Empty(t, result["tasks"])
}

func TestSearchTasks(t *testing.T) {
	a := setupWithTasks(t)

	output, err := clitest.ExecuteCLICommand(t, a, SearchCmd(), []string{"rent", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "2\n", output)

	output, err = clitest.ExecuteCLICommand(t, a, SearchCmd(), []string{"nothing", "matches"})
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks found.")
}
