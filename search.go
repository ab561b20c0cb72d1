package arbor

import (
	gopath "path"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arborfs/arbor/store"
)

// Glob returns handles for every file under the folder whose path relative
// to it matches the doublestar pattern (gitignore-style "**" supported).
// Hidden entries participate; the traversal is the ordered recursive walk,
// so results come back in traversal order.
func (d *Folder) Glob(pattern string) ([]*File, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, &InvalidPathError{Path: pattern}
	}
	var matches []*File
	for f := range d.Files().Recursive().IncludingHidden().All() {
		rel := strings.TrimPrefix(f.Path(), d.p.String())
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return nil, &InvalidPathError{Path: pattern}
		}
		if ok {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

// FindFiles returns the paths of every file under the folder whose name
// matches the glob pattern. When the store offers the fast parallel walk
// capability it is used; otherwise the portable ordered traversal serves.
// Results are sorted by path either way.
func (d *Folder) FindFiles(pattern string) ([]string, error) {
	if _, err := gopath.Match(pattern, "probe"); err != nil {
		return nil, &InvalidPathError{Path: pattern}
	}

	var (
		mu    sync.Mutex
		found []string
	)
	if walker, ok := d.st.(store.Walker); ok {
		err := walker.WalkFiles(d.p.loc(), func(p string) error {
			if ok, _ := gopath.Match(pattern, gopath.Base(p)); ok {
				mu.Lock()
				found = append(found, p)
				mu.Unlock()
			}
			return nil
		})
		if err != nil {
			return nil, opError(OpRead, d.p.String(), err)
		}
	} else {
		for f := range d.Files().Recursive().IncludingHidden().All() {
			if ok, _ := gopath.Match(pattern, f.Name()); ok {
				found = append(found, f.Path())
			}
		}
	}
	sort.Strings(found)
	return found, nil
}
