// Package store defines the backing store contract the arbor core depends on,
// plus an instrumentation wrapper. Concrete implementations live in the
// osstore and memstore subpackages.
package store

import "time"

// Kind classifies what a path resolves to in the backing store.
type Kind uint8

const (
	// KindNotFound means the path does not resolve to anything.
	KindNotFound Kind = iota
	// KindFile means the path resolves to a regular file.
	KindFile
	// KindFolder means the path resolves to a directory.
	KindFolder
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	default:
		return "not found"
	}
}

// Entry is a single directory entry as reported by List.
type Entry struct {
	Name string
	Kind Kind
}

// Info holds per-entry metadata beyond name and kind.
type Info struct {
	Size    int64
	ModTime time.Time
}

// Store is the narrow adapter interface between the typed handle layer and
// whatever actually persists bytes and directory structure. All paths are
// absolute and slash-separated, without a trailing separator (except the
// root "/").
//
// Implementations must report List results in a stable order; the handle
// layer sorts by name regardless, so sorted output is preferred but not
// required.
type Store interface {
	// Stat reports what the path currently resolves to.
	Stat(path string) Kind

	// Info returns metadata for an existing entry.
	Info(path string) (Info, error)

	// List returns the direct children of a folder path.
	List(path string) ([]Entry, error)

	// CreateFile creates a new empty file. It fails if the path already
	// exists or the parent folder is missing.
	CreateFile(path string) error

	// CreateFolder creates a new empty folder. Same failure rules as
	// CreateFile.
	CreateFolder(path string) error

	// Delete removes an entry. A folder with children is only removed when
	// recursive is set. Deleting a path that does not exist is an error.
	Delete(path string, recursive bool) error

	// Rename moves an entry to a new path within the same parent.
	Rename(oldPath, newPath string) error

	// Move relocates an entry to a new parent folder.
	Move(oldPath, newPath string) error

	// Read returns the full contents of a file.
	Read(path string) ([]byte, error)

	// Write replaces the contents of a file, creating it if absent.
	Write(path string, data []byte) error

	// WorkingDir returns the folder relative paths resolve against.
	WorkingDir() (string, error)

	// HomeDir returns the user's home folder, if the store has one.
	HomeDir() (string, bool)

	// TempDir returns the folder for transient files, if the store has one.
	TempDir() (string, bool)
}

// Walker is an optional Store capability: a fast, order-independent recursive
// walk over every file under root. Stores backed by a real operating-system
// tree implement it with a parallel walker; the handle layer falls back to
// its own traversal when the capability is absent.
type Walker interface {
	WalkFiles(root string, fn func(path string) error) error
}
