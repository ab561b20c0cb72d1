// Package osstore implements store.Store on top of the operating-system
// filesystem.
package osstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charlievieth/fastwalk"

	"github.com/arborfs/arbor/store"
)

// Store is the operating-system backed store. The zero value is ready to use.
type Store struct{}

// New returns an OS-backed store.
func New() *Store { return &Store{} }

// Stat implements store.Store.
func (s *Store) Stat(path string) store.Kind {
	info, err := os.Stat(path)
	if err != nil {
		return store.KindNotFound
	}
	if info.IsDir() {
		return store.KindFolder
	}
	return store.KindFile
}

// Info implements store.Store.
func (s *Store) Info(path string) (store.Info, error) {
	info, err := os.Stat(path)
	if err != nil {
		return store.Info{}, err
	}
	return store.Info{Size: info.Size(), ModTime: info.ModTime()}, nil
}

// List implements store.Store. os.ReadDir already sorts by name.
func (s *Store) List(path string) ([]store.Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]store.Entry, 0, len(dirents))
	for _, d := range dirents {
		kind := store.KindFile
		if d.IsDir() {
			kind = store.KindFolder
		}
		entries = append(entries, store.Entry{Name: d.Name(), Kind: kind})
	}
	return entries, nil
}

// CreateFile implements store.Store. O_EXCL makes creation of an existing
// path fail rather than truncate it.
func (s *Store) CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// CreateFolder implements store.Store.
func (s *Store) CreateFolder(path string) error {
	return os.Mkdir(path, 0o755)
}

// Delete implements store.Store. os.RemoveAll succeeds on missing paths, so
// existence is checked first to keep delete-of-deleted an error.
func (s *Store) Delete(path string, recursive bool) error {
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	if recursive {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// Rename implements store.Store.
func (s *Store) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Move implements store.Store.
func (s *Store) Move(oldPath, newPath string) error {
	if s.Stat(newPath) != store.KindNotFound {
		return fmt.Errorf("osstore: %s already exists", newPath)
	}
	return os.Rename(oldPath, newPath)
}

// Read implements store.Store.
func (s *Store) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Write implements store.Store.
func (s *Store) Write(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// WorkingDir implements store.Store.
func (s *Store) WorkingDir() (string, error) {
	return os.Getwd()
}

// HomeDir implements store.Store.
func (s *Store) HomeDir() (string, bool) {
	home, err := os.UserHomeDir()
	return home, err == nil && home != ""
}

// TempDir implements store.Store.
func (s *Store) TempDir() (string, bool) {
	return os.TempDir(), true
}

// WalkFiles implements store.Walker with a parallel walk. Order is not
// guaranteed; callers sort if they need determinism.
func (s *Store) WalkFiles(root string, fn func(path string) error) error {
	conf := fastwalk.Config{Follow: false}
	return fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			return nil
		}
		return fn(filepath.ToSlash(path))
	})
}
