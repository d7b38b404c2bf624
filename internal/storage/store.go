package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Storer reads and writes whole records addressed by a string key.
type Storer[T any] interface {
	Save(string, T) error
	Load(string) (T, error)
}

// FileStore keeps each record as <key>.json in a single directory.
type FileStore[T any] struct {
	path string

	mu sync.RWMutex
}

func NewFileStore[T any](path string) (*FileStore[T], error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("checking store directory: %w", err)
	case !info.IsDir():
		return nil, fmt.Errorf("%s is not a directory", path)
	}

	return &FileStore[T]{path: path}, nil
}

func (s *FileStore[T]) Save(key string, v T) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return atomicWrite(s.filePath(key), jsonData, 0644)
}

// Load returns ErrNotFound when no record has been saved under key.
func (s *FileStore[T]) Load(key string) (T, error) {
	var v T

	s.mu.RLock()
	jsonData, err := os.ReadFile(s.filePath(key))
	s.mu.RUnlock()

	if errors.Is(err, fs.ErrNotExist) {
		return v, ErrNotFound
	}
	if err != nil {
		return v, fmt.Errorf("reading file: %w", err)
	}

	err = json.Unmarshal(jsonData, &v)
	if err != nil {
		return v, fmt.Errorf("unmarshalling %s: %w", key, err)
	}

	return v, nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
// This prevents partial or empty files if the process is interrupted.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func (s *FileStore[T]) filePath(key string) string {
	return filepath.Join(s.path, fmt.Sprintf("%s.json", key))
}
