package store

import (
	"errors"
	"fmt"
	"os"
)

// Backup copies the store file to the backup path, overwriting any previous backup
func (s *Store) Backup() error {
	if _, err := os.Stat(s.cfg.DataFile); errors.Is(err, os.ErrNotExist) {
		return ErrNothingToBackup
	}
	if err := copyFile(s.cfg.DataFile, s.cfg.BackupFile); err != nil {
		s.logger.Error("backup failed", "from", s.cfg.DataFile, "to", s.cfg.BackupFile, "error", err)
		return fmt.Errorf("backup failed: %w", err)
	}
	s.logger.Debug("backup created", "path", s.cfg.BackupFile)
	return nil
}

// Restore copies the backup file over the store file
func (s *Store) Restore() error {
	if _, err := os.Stat(s.cfg.BackupFile); errors.Is(err, os.ErrNotExist) {
		return ErrNoBackup
	}
	if err := copyFile(s.cfg.BackupFile, s.cfg.DataFile); err != nil {
		s.logger.Error("restore failed", "from", s.cfg.BackupFile, "to", s.cfg.DataFile, "error", err)
		return fmt.Errorf("restore failed: %w", err)
	}
	s.logger.Debug("backup restored", "path", s.cfg.BackupFile)
	return nil
}

// HasBackup reports whether a backup file exists
func (s *Store) HasBackup() bool {
	_, err := os.Stat(s.cfg.BackupFile)
	return err == nil
}
