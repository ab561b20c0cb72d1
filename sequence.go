package arbor

import (
	"iter"
	"sort"

	"github.com/arborfs/arbor/store"
)

// Sequence is a lazy, restartable view over a folder's children of one kind.
// It holds no handles and caches nothing: every iteration re-queries the
// backing store, so it reflects the store's state at iteration time.
//
// Sequences are values; Recursive and IncludingHidden return widened copies
// and leave the receiver untouched.
type Sequence[T Item] struct {
	st        store.Store
	root      Path
	kind      store.Kind
	hidden    bool
	recursive bool
	wrap      func(store.Store, Path) T
}

// Recursive returns a copy of the sequence that descends into subfolders.
// A folder's own matches are yielded before any of its subfolders' subtrees,
// and each subfolder's subtree is fully yielded before its next sibling's.
func (s Sequence[T]) Recursive() Sequence[T] {
	s.recursive = true
	return s
}

// IncludingHidden returns a copy of the sequence that includes dot-prefixed
// entries. The filter applies per directory level: without it, hidden
// subfolders are not descended into either.
func (s Sequence[T]) IncludingHidden() Sequence[T] {
	s.hidden = true
	return s
}

// All returns the traversal as a single-use iterator. Call All again (or any
// derived operation) for a fresh traversal. Entries are visited in name
// order within each directory level.
func (s Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.walk(s.root, yield)
	}
}

// walk lists one directory level and yields its matches, then descends.
// Returns false once the consumer stops. A level that fails to list is
// skipped: the tree may mutate under the walker, which is accepted behavior.
func (s Sequence[T]) walk(dir Path, yield func(T) bool) bool {
	entries, err := s.st.List(dir.loc())
	if err != nil {
		return true
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	var subfolders []Path
	for _, e := range entries {
		if !s.hidden && isHidden(e.Name) {
			continue
		}
		if e.Kind == s.kind {
			if !yield(s.wrap(s.st, dir.child(e.Name, e.Kind))) {
				return false
			}
		}
		if s.recursive && e.Kind == store.KindFolder {
			subfolders = append(subfolders, dir.child(e.Name, e.Kind))
		}
	}
	for _, sub := range subfolders {
		if !s.walk(sub, yield) {
			return false
		}
	}
	return true
}

// Count traverses the sequence and returns the number of elements.
func (s Sequence[T]) Count() int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}

// Names traverses the sequence and returns the element names in traversal
// order.
func (s Sequence[T]) Names() []string {
	var names []string
	for item := range s.All() {
		names = append(names, item.Name())
	}
	return names
}

// First returns the first element without traversing further.
func (s Sequence[T]) First() (T, bool) {
	for item := range s.All() {
		return item, true
	}
	var zero T
	return zero, false
}

// Last traverses the whole sequence and returns the final element.
func (s Sequence[T]) Last() (T, bool) {
	var last T
	found := false
	for item := range s.All() {
		last = item
		found = true
	}
	return last, found
}

// MoveTo moves every element into the destination folder, in traversal
// order. The first failure is returned immediately; elements already moved
// stay moved.
func (s Sequence[T]) MoveTo(dest *Folder) error {
	for item := range s.All() {
		if err := item.MoveTo(dest); err != nil {
			return err
		}
	}
	return nil
}
