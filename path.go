package arbor

import (
	gopath "path"
	"strings"

	"github.com/arborfs/arbor/store"
)

// Separator is the path separator used throughout the handle layer,
// regardless of the operating system underneath.
const Separator = "/"

// Path is a validated, kind-tagged path. Folder paths always end with exactly
// one separator; file paths never do. Paths are stored resolved (absolute):
// relative input is resolved against the store's working directory at
// construction time and does not track later working-directory changes.
type Path struct {
	s    string
	kind store.Kind
}

// resolvePath normalizes raw and validates that it currently resolves to an
// entity of the requested kind in the store.
func resolvePath(st store.Store, raw string, kind store.Kind) (Path, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Path{}, ErrEmptyPath
	}
	abs := trimmed
	if !strings.HasPrefix(abs, Separator) {
		wd, err := st.WorkingDir()
		if err != nil {
			return Path{}, &InvalidPathError{Path: raw}
		}
		abs = wd + Separator + abs
	}
	// Clean collapses duplicate separators, resolves "." and "..", and
	// drops any trailing separator (except for the root).
	abs = gopath.Clean(abs)
	if st.Stat(abs) != kind {
		return Path{}, &InvalidPathError{Path: trimmed}
	}
	return makePath(abs, kind), nil
}

// makePath tags an already-clean absolute path without store validation.
// Used for children discovered through listings and for post-mutation
// updates, where existence is implied.
func makePath(clean string, kind store.Kind) Path {
	if kind == store.KindFolder && clean != Separator {
		clean += Separator
	}
	return Path{s: clean, kind: kind}
}

// String returns the normalized path, with the kind-appropriate trailing
// separator rule applied.
func (p Path) String() string { return p.s }

// Kind returns the path's kind tag.
func (p Path) Kind() store.Kind { return p.kind }

// IsRoot reports whether this is the store root.
func (p Path) IsRoot() bool { return p.s == Separator }

// loc returns the path in the form the store expects: no trailing separator,
// except for the root itself.
func (p Path) loc() string {
	if p.kind == store.KindFolder && p.s != Separator {
		return strings.TrimSuffix(p.s, Separator)
	}
	return p.s
}

// Name returns the last path component. The root's name is the separator.
func (p Path) Name() string {
	if p.IsRoot() {
		return Separator
	}
	trimmed := strings.TrimSuffix(p.s, Separator)
	return trimmed[strings.LastIndex(trimmed, Separator)+1:]
}

// Parent returns the folder path one component up, and false at the root.
func (p Path) Parent() (Path, bool) {
	if p.IsRoot() {
		return Path{}, false
	}
	trimmed := strings.TrimSuffix(p.s, Separator)
	dir := trimmed[:strings.LastIndex(trimmed, Separator)]
	if dir == "" {
		dir = Separator
	}
	return makePath(dir, store.KindFolder), true
}

// child returns the path of a directly contained entry. Only valid on folder
// paths with a bare (separator-free) name.
func (p Path) child(name string, kind store.Kind) Path {
	return makePath(strings.TrimSuffix(p.s, Separator)+Separator+name, kind)
}

// validName reports whether name is usable as a single path component.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.Contains(name, Separator)
}
