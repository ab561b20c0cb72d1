// Package memstore provides an in-memory store.Store implementation. It is
// the natural seam for tests and for embedding a scratch tree that never
// touches the operating system.
package memstore

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/arborfs/arbor/store"
)

type node struct {
	dir      bool
	data     []byte
	children map[string]*node
	modTime  time.Time
}

func newDir() *node {
	return &node{dir: true, children: make(map[string]*node), modTime: time.Now()}
}

// Store is an in-memory hierarchical store. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	root *node
	wd   string
	home string
	tmp  string
}

// New returns an empty store containing only the root folder "/". The
// working directory starts at the root; home and temp locations are unset
// until configured.
func New() *Store {
	return &Store{root: newDir(), wd: "/"}
}

// SetWorkingDir changes the folder relative paths resolve against.
func (s *Store) SetWorkingDir(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wd = clean(p)
}

// SetHomeDir configures the home location reported by HomeDir.
func (s *Store) SetHomeDir(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.home = clean(p)
}

// SetTempDir configures the temporary location reported by TempDir.
func (s *Store) SetTempDir(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tmp = clean(p)
}

func clean(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// split returns the path components of a cleaned absolute path.
func split(p string) []string {
	p = strings.Trim(clean(p), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// lookup walks from the root to the node at p. Callers hold the lock.
func (s *Store) lookup(p string) *node {
	n := s.root
	for _, part := range split(p) {
		if !n.dir {
			return nil
		}
		child, ok := n.children[part]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// lookupParent resolves the parent folder of p and the final component.
func (s *Store) lookupParent(p string) (*node, string) {
	parts := split(p)
	if len(parts) == 0 {
		return nil, ""
	}
	n := s.root
	for _, part := range parts[:len(parts)-1] {
		if !n.dir {
			return nil, ""
		}
		child, ok := n.children[part]
		if !ok {
			return nil, ""
		}
		n = child
	}
	if !n.dir {
		return nil, ""
	}
	return n, parts[len(parts)-1]
}

// Stat implements store.Store.
func (s *Store) Stat(p string) store.Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.lookup(p)
	switch {
	case n == nil:
		return store.KindNotFound
	case n.dir:
		return store.KindFolder
	default:
		return store.KindFile
	}
}

// Info implements store.Store.
func (s *Store) Info(p string) (store.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.lookup(p)
	if n == nil {
		return store.Info{}, fmt.Errorf("memstore: %s does not exist", p)
	}
	return store.Info{Size: int64(len(n.data)), ModTime: n.modTime}, nil
}

// List implements store.Store. Entries are returned sorted by name.
func (s *Store) List(p string) ([]store.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.lookup(p)
	if n == nil {
		return nil, fmt.Errorf("memstore: %s does not exist", p)
	}
	if !n.dir {
		return nil, fmt.Errorf("memstore: %s is not a folder", p)
	}
	entries := make([]store.Entry, 0, len(n.children))
	for name, child := range n.children {
		kind := store.KindFile
		if child.dir {
			kind = store.KindFolder
		}
		entries = append(entries, store.Entry{Name: name, Kind: kind})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (s *Store) create(p string, dir bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	parent, name := s.lookupParent(p)
	if parent == nil || name == "" {
		return fmt.Errorf("memstore: parent of %s does not exist", p)
	}
	if _, exists := parent.children[name]; exists {
		return fmt.Errorf("memstore: %s already exists", p)
	}
	if dir {
		parent.children[name] = newDir()
	} else {
		parent.children[name] = &node{modTime: time.Now()}
	}
	return nil
}

// CreateFile implements store.Store.
func (s *Store) CreateFile(p string) error { return s.create(p, false) }

// CreateFolder implements store.Store.
func (s *Store) CreateFolder(p string) error { return s.create(p, true) }

// Delete implements store.Store.
func (s *Store) Delete(p string, recursive bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	parent, name := s.lookupParent(p)
	if parent == nil || name == "" {
		return fmt.Errorf("memstore: cannot delete %s", p)
	}
	n, ok := parent.children[name]
	if !ok {
		return fmt.Errorf("memstore: %s does not exist", p)
	}
	if n.dir && len(n.children) > 0 && !recursive {
		return fmt.Errorf("memstore: %s is not empty", p)
	}
	delete(parent.children, name)
	return nil
}

func (s *Store) relocate(oldPath, newPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A node reattached under its own descendant would become an
	// unreachable cycle; the OS returns EINVAL for the same rename.
	if strings.HasPrefix(clean(newPath)+"/", clean(oldPath)+"/") {
		return fmt.Errorf("memstore: cannot move %s into itself", oldPath)
	}
	oldParent, oldName := s.lookupParent(oldPath)
	if oldParent == nil || oldName == "" {
		return fmt.Errorf("memstore: %s does not exist", oldPath)
	}
	n, ok := oldParent.children[oldName]
	if !ok {
		return fmt.Errorf("memstore: %s does not exist", oldPath)
	}
	newParent, newName := s.lookupParent(newPath)
	if newParent == nil || newName == "" {
		return fmt.Errorf("memstore: parent of %s does not exist", newPath)
	}
	if _, exists := newParent.children[newName]; exists {
		return fmt.Errorf("memstore: %s already exists", newPath)
	}
	delete(oldParent.children, oldName)
	newParent.children[newName] = n
	n.modTime = time.Now()
	return nil
}

// Rename implements store.Store.
func (s *Store) Rename(oldPath, newPath string) error { return s.relocate(oldPath, newPath) }

// Move implements store.Store.
func (s *Store) Move(oldPath, newPath string) error { return s.relocate(oldPath, newPath) }

// Read implements store.Store.
func (s *Store) Read(p string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := s.lookup(p)
	if n == nil || n.dir {
		return nil, fmt.Errorf("memstore: %s is not a readable file", p)
	}
	out := make([]byte, len(n.data))
	copy(out, n.data)
	return out, nil
}

// Write implements store.Store. The file is created if absent, matching
// os.WriteFile semantics; the parent folder must exist.
func (s *Store) Write(p string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	parent, name := s.lookupParent(p)
	if parent == nil || name == "" {
		return fmt.Errorf("memstore: parent of %s does not exist", p)
	}
	n, ok := parent.children[name]
	if !ok {
		n = &node{}
		parent.children[name] = n
	} else if n.dir {
		return fmt.Errorf("memstore: %s is a folder", p)
	}
	n.data = make([]byte, len(data))
	copy(n.data, data)
	n.modTime = time.Now()
	return nil
}

// WorkingDir implements store.Store.
func (s *Store) WorkingDir() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wd, nil
}

// HomeDir implements store.Store.
func (s *Store) HomeDir() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.home, s.home != ""
}

// TempDir implements store.Store.
func (s *Store) TempDir() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tmp, s.tmp != ""
}
