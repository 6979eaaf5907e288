package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/gkwa/wackywolffish/internal/fileutil"
)

// ErrNotFound is returned when the manifest file does not exist.
var ErrNotFound = errors.New("manifest file not found")

// Store serializes access to one manifest file. Writers hold a sidecar flock
// for the duration of a read-modify-write pass.
type Store struct {
	path string
}

// NewStore creates a store for the manifest at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the manifest location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the manifest without taking the write lock.
func (s *Store) Load() (*Manifest, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("stat manifest: %w", err)
	}
	return Load(s.path)
}

// Update runs fn against the current manifest under an exclusive lock and
// writes the result back atomically. fn returning an error aborts the write.
func (s *Store) Update(fn func(*Manifest) error) error {
	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock manifest: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	m, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	return s.write(m)
}

// Create writes a fresh manifest, failing if one already exists.
func (s *Store) Create(m *Manifest) error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("manifest already exists at %s", s.path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat manifest: %w", err)
	}
	return s.write(m)
}

func (s *Store) write(m *Manifest) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(s.path, data, 0o644)
}
