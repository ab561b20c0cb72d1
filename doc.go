// Package arbor provides typed, validated handles over a hierarchical
// file/folder tree, with lazy, restartable traversal of folder contents.
//
// A handle (File or Folder) wraps a path that was validated against the
// backing store at construction. Mutations apply to the store first and
// update the handle's path only on success, so a handle always reflects the
// last successful operation it performed. Handles constructed independently
// for the same underlying path are unsynchronized views; coordinating
// concurrent mutation is the caller's concern.
//
// Folder contents are exposed as Sequence values: lazy, restartable
// traversals that re-query the backing store on every iteration and support
// recursion and hidden-entry inclusion:
//
//	docs, err := arbor.OpenFolder("/home/me/docs")
//	for f := range docs.Files().Recursive().All() {
//		fmt.Println(f.Path())
//	}
//
// Storage is pluggable through the store.Store interface; osstore binds to
// the operating-system filesystem and memstore provides an in-memory tree
// for tests and embedding.
package arbor
