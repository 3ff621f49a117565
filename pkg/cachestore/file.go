package cachestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists a single entry as a JSON file at a fixed path.
//
// Writes go through a temp file followed by a rename, so a concurrent reader
// either sees the previous complete file or the new one, never a torn write.
// There is deliberately no cross-process locking: the cached data is derived
// from a public source and idempotent to regenerate, so the last writer wins.
type FileStore[T any] struct {
	path string
}

// NewFileStore creates a file-backed store at the given path. An empty path
// falls back to DefaultPath.
func NewFileStore[T any](path string) *FileStore[T] {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore[T]{path: path}
}

// Path returns the location of the cache file.
func (s *FileStore[T]) Path() string { return s.path }

// Load reads and decodes the cache file. A missing file is a plain miss;
// an unreadable or undecodable file is a miss with a diagnostic error.
func (s *FileStore[T]) Load() (Entry[T], bool, error) {
	var entry Entry[T]

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entry, false, nil
		}
		return entry, false, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	if err := json.Unmarshal(data, &entry); err != nil {
		return entry, false, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	return entry, true, nil
}

// Save serializes the entry and atomically replaces the cache file.
func (s *FileStore[T]) Save(entry Entry[T]) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	// Write-then-rename keeps partially written files out of readers' sight.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}

// Clear deletes the cache file. A file that is already gone is a success.
func (s *FileStore[T]) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}
