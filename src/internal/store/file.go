// FILE: ecosnap/src/internal/store/file.go
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ecosnap/src/internal/core"
	"ecosnap/src/internal/format"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileStore keeps the waste log in a flat text file, one formatted line per entry
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path. Nothing touches the disk until the first Append.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	return &FileStore{path: filepath.Clean(path)}, nil
}

// Append creates the parent directory if needed and appends one line.
// The file is opened in append mode and never read; the line goes out in a single write.
func (s *FileStore) Append(entry core.LogEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open waste log: %w", err)
	}

	if _, err := f.WriteString(format.FormatLine(entry)); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to waste log: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close waste log: %w", err)
	}
	return nil
}

// Open returns the log file for reading
func (s *FileStore) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open waste log: %w", err)
	}
	return f, nil
}

// Location returns the file path
func (s *FileStore) Location() string {
	return s.path
}
