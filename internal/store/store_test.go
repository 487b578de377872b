package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lista/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var fixedTime = time.Date(2025, 6, 1, 12, 30, 0, 0, time.Local)

// newTestStore creates a store rooted in a temp dir with a fixed clock
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(Config{
		DataFile:   filepath.Join(dir, "todos.txt"),
		BackupFile: filepath.Join(dir, "todos_backup.txt"),
	}, WithClock(func() time.Time { return fixedTime }))
}

// seed adds the given descriptions with Medium priority
func seed(t *testing.T, s *Store, descriptions ...string) {
	t.Helper()
	for _, d := range descriptions {
		_, err := s.Add(d, models.PriorityMedium)
		require.NoError(t, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// ============================================================================
// ADD / READ
// ============================================================================

func TestAdd_ThenReadAll(t *testing.T) {
	s := newTestStore(t)

	cases := []struct {
		description string
		priority    models.Priority
	}{
		{"Complete project", models.PriorityHigh},
		{"Review code", models.PriorityMedium},
		{"Update docs", models.PriorityLow},
	}
	for _, c := range cases {
		task, err := s.Add(c.description, c.priority)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, task.Status)
	}

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, tasks, len(cases))
	for i, c := range cases {
		assert.Equal(t, c.description, tasks[i].Description)
		assert.Equal(t, c.priority, tasks[i].Priority)
		assert.Equal(t, models.StatusPending, tasks[i].Status)
		assert.Equal(t, "2025-06-01 12:30:00", tasks[i].Timestamp)
	}
}

func TestAdd_WritesLineFormat(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add("  Buy milk  ", models.PriorityLow)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01 12:30:00|Low|Pending|Buy milk\n", readFile(t, s.Config().DataFile))
}

func TestAdd_AfterUnterminatedLine(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Config().DataFile, []byte("2025-01-01 10:00:00|High|Pending|Pay rent"), 0o644))

	_, err := s.Add("Buy milk", models.PriorityLow)
	require.NoError(t, err)

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Pay rent", tasks[0].Description)
	assert.Equal(t, "Buy milk", tasks[1].Description)
	assert.Equal(t, models.PriorityLow, tasks[1].Priority)
	assert.Equal(t,
		"2025-01-01 10:00:00|High|Pending|Pay rent\n2025-06-01 12:30:00|Low|Pending|Buy milk\n",
		readFile(t, s.Config().DataFile))
}

func TestAdd_EmptyFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Config().DataFile, nil, 0o644))

	_, err := s.Add("Buy milk", models.PriorityLow)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01 12:30:00|Low|Pending|Buy milk\n", readFile(t, s.Config().DataFile))
}

func TestAdd_DefaultPriority(t *testing.T) {
	s := newTestStore(t)

	task, err := s.Add("No priority given", "")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, task.Priority)
}

func TestAdd_Validation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add("   ", models.PriorityHigh)
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = s.Add("left|right", models.PriorityHigh)
	assert.ErrorIs(t, err, ErrInvalidDescription)

	_, err = s.Add("two\nlines", models.PriorityHigh)
	assert.ErrorIs(t, err, ErrInvalidDescription)

	_, err = s.Add("Valid text", models.Priority("Urgent"))
	assert.ErrorIs(t, err, models.ErrInvalidPriority)

	_, statErr := os.Stat(s.Config().DataFile)
	assert.True(t, os.IsNotExist(statErr), "failed adds must not create the file")
}

func TestAdd_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	s := New(Config{DataFile: filepath.Join(dir, "nested", "deeper", "todos.txt")})

	_, err := s.Add("Somewhere deep", models.PriorityLow)
	require.NoError(t, err)

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestReadAll_MissingFile(t *testing.T) {
	s := newTestStore(t)

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestReadAll_SkipsMalformedLines(t *testing.T) {
	s := newTestStore(t)
	content := "2025-01-01 10:00:00|High|Pending|Good one\n" +
		"\n" +
		"not a record\n" +
		"2025-01-01 10:00:00|Low|Pending\n" +
		"2025-01-02 11:00:00|Low|Completed|Second good one\n"
	require.NoError(t, os.WriteFile(s.Config().DataFile, []byte(content), 0o644))

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Good one", tasks[0].Description)
	assert.Equal(t, "Second good one", tasks[1].Description)
}

func TestReadAll_DescriptionKeepsExtraDelimiters(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Config().DataFile,
		[]byte("2025-01-01 10:00:00|High|Pending|a|b|c\n"), 0o644))

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a|b|c", tasks[0].Description)
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "first", "second")

	require.NoError(t, s.UpdateStatus(1, models.StatusCompleted))

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, tasks[0].Status)
	assert.Equal(t, models.StatusCompleted, tasks[1].Status)

	// Reopen
	require.NoError(t, s.UpdateStatus(1, models.StatusPending))
	tasks, err = s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, tasks[1].Status)
}

func TestUpdateStatus_OutOfRangeLeavesFileUnchanged(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "only")
	before := readFile(t, s.Config().DataFile)

	for _, idx := range []int{-1, 1, 42} {
		err := s.UpdateStatus(idx, models.StatusCompleted)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", idx)
	}

	assert.Equal(t, before, readFile(t, s.Config().DataFile))
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "only")

	err := s.UpdateStatus(0, models.Status("Archived"))
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestUpdateDescription(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "Review code")

	require.NoError(t, s.UpdateDescription(0, "Review and test code"))
	task, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Review and test code", task.Description)

	assert.ErrorIs(t, s.UpdateDescription(0, ""), ErrEmptyDescription)
	assert.ErrorIs(t, s.UpdateDescription(0, "a|b"), ErrInvalidDescription)
	assert.ErrorIs(t, s.UpdateDescription(3, "x"), ErrIndexOutOfRange)
}

func TestUpdatePriority(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "Taxes")

	require.NoError(t, s.UpdatePriority(0, models.PriorityHigh))
	task, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, task.Priority)

	assert.ErrorIs(t, s.UpdatePriority(0, models.Priority("")), models.ErrInvalidPriority)
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "Taxes")

	require.NoError(t, s.Update(0, "File taxes", models.PriorityHigh))
	task, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "File taxes", task.Description)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, models.StatusPending, task.Status)

	before := readFile(t, s.Config().DataFile)
	assert.ErrorIs(t, s.Update(0, "a|b", models.PriorityLow), ErrInvalidDescription)
	assert.ErrorIs(t, s.Update(0, "ok", models.Priority("Urgent")), models.ErrInvalidPriority)
	assert.ErrorIs(t, s.Update(5, "ok", models.PriorityLow), ErrIndexOutOfRange)
	assert.Equal(t, before, readFile(t, s.Config().DataFile))
}

func TestUpdate_SingleRewriteWithAutoBackup(t *testing.T) {
	dir := t.TempDir()
	s := New(Config{
		DataFile:   filepath.Join(dir, "todos.txt"),
		BackupFile: filepath.Join(dir, "todos_backup.txt"),
		AutoBackup: true,
	}, WithClock(func() time.Time { return fixedTime }))
	seed(t, s, "Taxes")
	before := readFile(t, s.Config().DataFile)

	require.NoError(t, s.Update(0, "File taxes", models.PriorityLow))

	assert.Equal(t, before, readFile(t, s.Config().BackupFile), "backup holds the file before the whole edit")
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "a", "b", "c")

	require.NoError(t, s.Delete(1))

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Description)
	assert.Equal(t, "c", tasks[1].Description)

	// Deleting the same index again runs off the end of the list
	assert.NoError(t, s.Delete(1))
	assert.ErrorIs(t, s.Delete(1), ErrIndexOutOfRange)
}

func TestDelete_ReducesCountByOne(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for i := 0; i < n; i++ {
			t.Run(fmt.Sprintf("n=%d/i=%d", n, i), func(t *testing.T) {
				s := newTestStore(t)
				for k := 0; k < n; k++ {
					seed(t, s, fmt.Sprintf("task %d", k))
				}

				require.NoError(t, s.Delete(i))

				tasks, err := s.ReadAll()
				require.NoError(t, err)
				assert.Len(t, tasks, n-1)
				for _, task := range tasks {
					assert.NotEqual(t, fmt.Sprintf("task %d", i), task.Description)
				}
			})
		}
	}
}

// ============================================================================
// CLEAR / RESET
// ============================================================================

func TestClearCompleted_Idempotent(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "a", "b", "c", "d")
	require.NoError(t, s.UpdateStatus(0, models.StatusCompleted))
	require.NoError(t, s.UpdateStatus(2, models.StatusCompleted))

	removed, err := s.ClearCompleted()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	once := readFile(t, s.Config().DataFile)

	removed, err = s.ClearCompleted()
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, once, readFile(t, s.Config().DataFile))

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "b", tasks[0].Description)
	assert.Equal(t, "d", tasks[1].Description)
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "a", "b")

	removed, err := s.ClearAll()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	tasks, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, "", readFile(t, s.Config().DataFile))
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "a")

	require.NoError(t, s.Reset())
	_, err := os.Stat(s.Config().DataFile)
	assert.True(t, os.IsNotExist(err))

	// Resetting again is fine
	assert.NoError(t, s.Reset())
}

// ============================================================================
// ATOMIC WRITES / AUTO BACKUP
// ============================================================================

func TestRewrite_LeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "a", "b")
	require.NoError(t, s.Delete(0))

	entries, err := os.ReadDir(filepath.Dir(s.Config().DataFile))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "todos.txt", entries[0].Name())
}

func TestAutoBackup_CopiesBeforeRewrite(t *testing.T) {
	dir := t.TempDir()
	s := New(Config{
		DataFile:   filepath.Join(dir, "todos.txt"),
		BackupFile: filepath.Join(dir, "todos_backup.txt"),
		AutoBackup: true,
	})
	seed(t, s, "a", "b")
	before := readFile(t, s.Config().DataFile)

	require.NoError(t, s.Delete(0))

	assert.Equal(t, before, readFile(t, s.Config().BackupFile))
}
