// Package storage persists named collections as JSON arrays on disk.
//
// Each collection lives in <dir>/<name>.json and is always read and written
// whole. Writers go through Collection.Mutate, which holds the collection
// lock across load, mutate and save.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorrupt is returned when a collection file is not a JSON array.
var ErrCorrupt = errors.New("collection file is not a JSON array")

// Store is a handle on a data directory.
type Store struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

// Open prepares dir for use, creating it if needed.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("storage: data directory is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", abs, err)
	}
	return &Store{dir: abs, locks: map[string]*sync.RWMutex{}}, nil
}

// Dir returns the absolute data directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) lock(name string) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.RWMutex{}
		s.locks[name] = l
	}
	return l
}

// Collection is an ordered sequence of T records persisted in one file.
type Collection[T any] struct {
	name string
	path string
	mu   *sync.RWMutex
}

// NewCollection binds name to <dir>/<name>.json. Collections with the same
// name on the same Store share a lock.
func NewCollection[T any](s *Store, name string) *Collection[T] {
	return &Collection[T]{
		name: name,
		path: filepath.Join(s.dir, name+".json"),
		mu:   s.lock(name),
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Path returns the backing file path.
func (c *Collection[T]) Path() string { return c.path }

// Load returns all records; a missing or empty file yields an empty slice.
func (c *Collection[T]) Load() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.read()
}

// Save replaces the file contents with rows.
func (c *Collection[T]) Save(rows []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(rows)
}

// Mutate loads the records, passes them to fn and saves fn's result. Nothing
// is written when fn fails.
func (c *Collection[T]) Mutate(fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows, err := c.read()
	if err != nil {
		return err
	}
	out, err := fn(rows)
	if err != nil {
		return err
	}
	return c.write(out)
}

func (c *Collection[T]) read() ([]T, error) {
	raw, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []T{}, nil
	}
	if raw[0] != '[' {
		return nil, fmt.Errorf("read %s: %w", c.path, ErrCorrupt)
	}
	rows := []T{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.path, err)
	}
	return rows, nil
}

// write goes through a temp file in the same directory and renames it over
// the target, so readers never see a half-written array.
func (c *Collection[T]) write(rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, "."+c.name+"-*.json")
	if err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.path, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		return fmt.Errorf("replace %s: %w", c.path, err)
	}
	return nil
}
