package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/models"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		DataFile:   filepath.Join(dir, "todos.txt"),
		BackupFile: filepath.Join(dir, "todos_backup.txt"),
	}

	fixed := time.Date(2024, 3, 9, 8, 0, 0, 0, time.Local)
	a := New(cfg, WithClock(func() time.Time { return fixed }))
	require.NotNil(t, a)
	require.NotNil(t, a.Store)
	assert.Same(t, cfg, a.Config)
	assert.Equal(t, cfg.DataFile, a.Store.Config().DataFile)

	task, err := a.Store.Add("Water plants", models.PriorityLow)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09 08:00:00", task.Timestamp)
}

func TestClose(t *testing.T) {
	a := New(&config.Config{DataFile: filepath.Join(t.TempDir(), "t.txt")})
	assert.NoError(t, a.Close())
}
