package arbor

import (
	"errors"
	"fmt"
)

// Operation names carried by OpError.
const (
	OpRename       = "rename"
	OpMove         = "move"
	OpDelete       = "delete"
	OpCreateFile   = "create file"
	OpCreateFolder = "create folder"
	OpRead         = "read"
	OpWrite        = "write"
	OpArchive      = "archive"
)

// ErrEmptyPath is returned when a handle is constructed from an empty or
// all-whitespace path string.
var ErrEmptyPath = errors.New("arbor: empty path")

// ErrUnsupportedEncoding is returned when text cannot be converted to or
// from the requested character set.
var ErrUnsupportedEncoding = errors.New("arbor: unsupported encoding")

// ErrLocationUnavailable is returned when a well-known location (home,
// temporary) is not provided by the backing store.
var ErrLocationUnavailable = errors.New("arbor: location unavailable")

// InvalidPathError reports a path that does not resolve to an entity of the
// requested kind.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("arbor: invalid path %q", e.Path)
}

// OpError reports a failed mutation or I/O operation on an item. Path is the
// item's path at the time of the failure, so the caller can report precisely
// which entity was involved.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("arbor: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("arbor: %s %s failed", e.Op, e.Path)
}

func (e *OpError) Unwrap() error { return e.Err }

func opError(op, path string, err error) error {
	return &OpError{Op: op, Path: path, Err: err}
}
