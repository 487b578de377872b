package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Validate checks the store file with ValidateFile
func (s *Store) Validate() error {
	return ValidateFile(s.cfg.DataFile)
}

// ValidateFile checks that every non-blank line of path is a well-formed
// record. A missing file is valid. The first bad line is reported as a
// *ValidationError.
func ValidateFile(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open task file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if reason := checkLine(line); reason != "" {
			return &ValidationError{Path: path, Line: lineNum, Reason: reason, Text: line}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read task file: %w", err)
	}
	return nil
}
