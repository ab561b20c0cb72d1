package arbor

import (
	"github.com/arborfs/arbor/store"
)

// Item is the capability set shared by File and Folder handles.
//
// A handle owns its path exclusively: after a successful rename or move the
// handle's path reflects the new location, but handles constructed
// independently for the same underlying path do not observe each other's
// mutations. A deleted entity's handle keeps its last path so errors can
// reference it; every subsequent operation re-validates against the store
// and fails.
type Item interface {
	// Name returns the last path component.
	Name() string
	// Path returns the full normalized path. Folder paths carry a trailing
	// separator, file paths do not.
	Path() string
	// Parent returns the containing folder, or false at the store root.
	Parent() (*Folder, bool)
	// Rename gives the item a new name within the same parent folder.
	Rename(name string) error
	// MoveTo relocates the item into the destination folder, keeping its name.
	MoveTo(dest *Folder) error
	// Delete removes the item from the backing store. Folders are deleted
	// recursively.
	Delete() error
}

// entity carries the state and behavior common to File and Folder.
type entity struct {
	st store.Store
	p  Path
}

func (e *entity) Name() string { return e.p.Name() }

func (e *entity) Path() string { return e.p.String() }

// Parent derives the containing folder by dropping the last path component.
// No store round-trip: the parent of a validated path existed when the child
// did. Returns false at the root.
func (e *entity) Parent() (*Folder, bool) {
	parent, ok := e.p.Parent()
	if !ok {
		return nil, false
	}
	return &Folder{entity{st: e.st, p: parent}}, true
}

// rename applies the store rename and updates the handle's path only on
// success.
func (e *entity) rename(newName string) error {
	if !validName(newName) {
		return opError(OpRename, e.p.String(), &InvalidPathError{Path: newName})
	}
	parent, ok := e.p.Parent()
	if !ok {
		return opError(OpRename, e.p.String(), nil)
	}
	target := parent.child(newName, e.p.kind)
	if err := e.st.Rename(e.p.loc(), target.loc()); err != nil {
		return opError(OpRename, e.p.String(), err)
	}
	e.p = target
	return nil
}

// moveTo applies the store move and updates the handle's path only on
// success. The destination path is the destination folder's path plus the
// item's current name.
func (e *entity) moveTo(dest *Folder) error {
	target := dest.p.child(e.p.Name(), e.p.kind)
	if err := e.st.Move(e.p.loc(), target.loc()); err != nil {
		return opError(OpMove, e.p.String(), err)
	}
	e.p = target
	return nil
}

// deleteEntity removes the backing entry. The path field is left in place so
// the caller (and any error) can still reference where the entity was.
func (e *entity) deleteEntity(recursive bool) error {
	if err := e.st.Delete(e.p.loc(), recursive); err != nil {
		return opError(OpDelete, e.p.String(), err)
	}
	return nil
}
