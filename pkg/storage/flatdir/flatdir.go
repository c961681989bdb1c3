package flatdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store is a handle to the directory holding the record files. Each table
// gets its path from here; nothing else in the process hard-codes paths,
// so tests can point a Store at a temporary directory.
type Store struct {
	dir string
}

// Open creates the data directory if needed and verifies it is writable by
// creating and removing a probe file.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return nil, fmt.Errorf("data dir not writable: %w", err)
	}
	if err := os.Remove(probe); err != nil {
		return nil, fmt.Errorf("data dir probe cleanup: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Path returns the absolute path of one table file inside the store.
func (s *Store) Path(name string) string { return filepath.Join(s.dir, name) }
