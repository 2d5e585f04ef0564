package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

const (
	dirPerm  fs.FileMode = 0o700
	filePerm fs.FileMode = 0o600
)

// Store reads and writes whole text files.
type Store struct{}

// NewStore creates a filesystem Store.
func NewStore() *Store {
	return &Store{}
}

// ReadText returns the contents of the file at fpath.
func (s *Store) ReadText(fpath string) (string, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return "", fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return "", fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return "", fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return string(data), nil
}

// WriteText replaces the file at fpath with text, creating parent directories as needed.
func (s *Store) WriteText(fpath string, text string) error {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err == nil && stat.IsDir() {
		return fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	err = os.MkdirAll(filepath.Dir(cleanPath), dirPerm)
	if err != nil {
		return fmt.Errorf("creating directory for %q: %w", cleanPath, err)
	}

	err = os.WriteFile(cleanPath, []byte(text), filePerm)
	if err != nil {
		return fmt.Errorf("writing file %q: %w", cleanPath, err)
	}

	return nil
}
