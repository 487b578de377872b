package store

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/lista/internal/export"
)

// Export writes the current task list to path in the given format.
// The destination is replaced if it exists.
func (s *Store) Export(ctx context.Context, path string, format export.Format) error {
	tasks, err := s.ReadAll()
	if err != nil {
		return err
	}
	if err := export.WriteFile(ctx, path, format, tasks, s.now()); err != nil {
		s.logger.Error("export failed", "path", path, "format", format, "error", err)
		return fmt.Errorf("export failed: %w", err)
	}
	s.logger.Debug("tasks exported", "path", path, "format", format, "count", len(tasks))
	return nil
}
