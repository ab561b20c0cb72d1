package arbor

import (
	"strings"

	"github.com/arborfs/arbor/store"
)

// Folder is a handle to a container entity in the tree.
type Folder struct {
	entity
}

func newFolder(st store.Store, p Path) *Folder {
	return &Folder{entity{st: st, p: p}}
}

// Rename renames the folder within its parent folder.
func (d *Folder) Rename(name string) error {
	return d.rename(name)
}

// MoveTo moves the folder (and its whole subtree) into the destination
// folder, keeping its name.
func (d *Folder) MoveTo(dest *Folder) error {
	return d.moveTo(dest)
}

// Delete removes the folder and all of its descendants.
func (d *Folder) Delete() error {
	return d.deleteEntity(true)
}

// File returns a handle to a directly contained file.
func (d *Folder) File(name string) (*File, error) {
	p, err := d.childPath(name, store.KindFile)
	if err != nil {
		return nil, err
	}
	return newFile(d.st, p), nil
}

// Subfolder returns a handle to a directly contained folder.
func (d *Folder) Subfolder(name string) (*Folder, error) {
	p, err := d.childPath(name, store.KindFolder)
	if err != nil {
		return nil, err
	}
	return newFolder(d.st, p), nil
}

func (d *Folder) childPath(name string, kind store.Kind) (Path, error) {
	if !validName(name) {
		return Path{}, &InvalidPathError{Path: name}
	}
	p := d.p.child(name, kind)
	if d.st.Stat(p.loc()) != kind {
		return Path{}, &InvalidPathError{Path: p.loc()}
	}
	return p, nil
}

// ContainsFile reports whether the folder directly contains a file with the
// given name.
func (d *Folder) ContainsFile(name string) bool {
	_, err := d.File(name)
	return err == nil
}

// ContainsSubfolder reports whether the folder directly contains a folder
// with the given name.
func (d *Folder) ContainsSubfolder(name string) bool {
	_, err := d.Subfolder(name)
	return err == nil
}

// CreateFile creates a new empty file in the folder and returns its handle.
// It fails if an entity with that name already exists.
func (d *Folder) CreateFile(name string) (*File, error) {
	if !validName(name) {
		return nil, opError(OpCreateFile, d.p.String()+name, &InvalidPathError{Path: name})
	}
	p := d.p.child(name, store.KindFile)
	if err := d.st.CreateFile(p.loc()); err != nil {
		return nil, opError(OpCreateFile, p.loc(), err)
	}
	return newFile(d.st, p), nil
}

// CreateFileContaining creates a new file with the given contents.
func (d *Folder) CreateFileContaining(name string, data []byte) (*File, error) {
	f, err := d.CreateFile(name)
	if err != nil {
		return nil, err
	}
	if err := f.Write(data); err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFileIfNeeded returns the existing file with the given name, creating
// it first when absent.
func (d *Folder) CreateFileIfNeeded(name string) (*File, error) {
	if f, err := d.File(name); err == nil {
		return f, nil
	}
	return d.CreateFile(name)
}

// CreateSubfolder creates a new empty subfolder and returns its handle. It
// fails if an entity with that name already exists.
func (d *Folder) CreateSubfolder(name string) (*Folder, error) {
	if !validName(name) {
		return nil, opError(OpCreateFolder, d.p.String()+name, &InvalidPathError{Path: name})
	}
	p := d.p.child(name, store.KindFolder)
	if err := d.st.CreateFolder(p.loc()); err != nil {
		return nil, opError(OpCreateFolder, p.loc(), err)
	}
	return newFolder(d.st, p), nil
}

// CreateSubfolderIfNeeded returns the existing subfolder with the given
// name, creating it first when absent.
func (d *Folder) CreateSubfolderIfNeeded(name string) (*Folder, error) {
	if sub, err := d.Subfolder(name); err == nil {
		return sub, nil
	}
	return d.CreateSubfolder(name)
}

// Empty deletes all direct children of the folder. Hidden entries are kept
// unless includeHidden is set. An already-empty folder is not an error.
func (d *Folder) Empty(includeHidden bool) error {
	entries, err := d.st.List(d.p.loc())
	if err != nil {
		return opError(OpDelete, d.p.String(), err)
	}
	for _, e := range entries {
		if !includeHidden && isHidden(e.Name) {
			continue
		}
		child := d.p.child(e.Name, e.Kind)
		if err := d.st.Delete(child.loc(), e.Kind == store.KindFolder); err != nil {
			return opError(OpDelete, child.loc(), err)
		}
	}
	return nil
}

// Files returns the folder's file sequence: non-recursive, hidden entries
// excluded. Use Recursive and IncludingHidden on the result to widen it.
func (d *Folder) Files() Sequence[*File] {
	return Sequence[*File]{
		st:   d.st,
		root: d.p,
		kind: store.KindFile,
		wrap: func(st store.Store, p Path) *File { return newFile(st, p) },
	}
}

// Subfolders returns the folder's subfolder sequence: non-recursive, hidden
// entries excluded.
func (d *Folder) Subfolders() Sequence[*Folder] {
	return Sequence[*Folder]{
		st:   d.st,
		root: d.p,
		kind: store.KindFolder,
		wrap: func(st store.Store, p Path) *Folder { return newFolder(st, p) },
	}
}

// isHidden reports whether a directory entry name is hidden by the
// dot-prefix convention.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
