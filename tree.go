package arbor

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/arborfs/arbor/store"
	"github.com/arborfs/arbor/store/osstore"
)

// Tree is the construction point for handles. It binds every handle it
// creates to one backing store.
type Tree struct {
	st store.Store
}

// New returns a Tree over the given backing store.
func New(st store.Store) *Tree {
	return &Tree{st: st}
}

// Store returns the backing store handles created by this tree talk to.
func (t *Tree) Store() store.Store { return t.st }

// OpenFile validates path and returns a file handle. Relative paths resolve
// against the store's working directory.
func (t *Tree) OpenFile(path string) (*File, error) {
	p, err := resolvePath(t.st, path, store.KindFile)
	if err != nil {
		return nil, err
	}
	return newFile(t.st, p), nil
}

// OpenFolder validates path and returns a folder handle.
func (t *Tree) OpenFolder(path string) (*Folder, error) {
	p, err := resolvePath(t.st, path, store.KindFolder)
	if err != nil {
		return nil, err
	}
	return newFolder(t.st, p), nil
}

// Root returns the store's root folder.
func (t *Tree) Root() (*Folder, error) {
	return t.OpenFolder(Separator)
}

// Home returns the user's home folder, or ErrLocationUnavailable when the
// store has none.
func (t *Tree) Home() (*Folder, error) {
	dir, ok := t.st.HomeDir()
	if !ok {
		return nil, fmt.Errorf("home: %w", ErrLocationUnavailable)
	}
	return t.OpenFolder(dir)
}

// Temporary returns the store's folder for transient files, or
// ErrLocationUnavailable when the store has none.
func (t *Tree) Temporary() (*Folder, error) {
	dir, ok := t.st.TempDir()
	if !ok {
		return nil, fmt.Errorf("temporary: %w", ErrLocationUnavailable)
	}
	return t.OpenFolder(dir)
}

// Current returns the folder relative paths resolve against.
func (t *Tree) Current() (*Folder, error) {
	dir, err := t.st.WorkingDir()
	if err != nil {
		return nil, &InvalidPathError{Path: dir}
	}
	return t.OpenFolder(dir)
}

// Scratch creates and returns a uniquely named folder under Temporary, for
// disposable work. The caller owns cleanup.
func (t *Tree) Scratch() (*Folder, error) {
	tmp, err := t.Temporary()
	if err != nil {
		return nil, err
	}
	return tmp.CreateSubfolder("arbor-" + uuid.NewString())
}

var (
	defaultOnce sync.Once
	defaultTree *Tree
)

// Default returns the process-wide Tree over the operating-system store.
func Default() *Tree {
	defaultOnce.Do(func() {
		defaultTree = New(osstore.New())
	})
	return defaultTree
}

// OpenFile opens a file handle on the operating-system store.
func OpenFile(path string) (*File, error) { return Default().OpenFile(path) }

// OpenFolder opens a folder handle on the operating-system store.
func OpenFolder(path string) (*Folder, error) { return Default().OpenFolder(path) }

// Root returns the operating-system root folder.
func Root() (*Folder, error) { return Default().Root() }

// Home returns the user's home folder on the operating-system store.
func Home() (*Folder, error) { return Default().Home() }

// Temporary returns the operating-system temporary folder.
func Temporary() (*Folder, error) { return Default().Temporary() }

// Current returns the process working directory as a folder handle.
func Current() (*Folder, error) { return Default().Current() }
