package arbor

import (
	"strings"

	"github.com/arborfs/arbor/store"
)

// File is a handle to a leaf entity in the tree.
type File struct {
	entity
}

func newFile(st store.Store, p Path) *File {
	return &File{entity{st: st, p: p}}
}

// Extension returns the file name's extension without the leading dot. It is
// empty when the name has no dot, or when the only dot leads the name (dot
// files like ".profile" have no extension).
func (f *File) Extension() string {
	name := f.Name()
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return ""
	}
	return name[idx+1:]
}

// NameWithoutExtension returns the name with the extension and its separating
// dot removed.
func (f *File) NameWithoutExtension() string {
	name := f.Name()
	ext := f.Extension()
	if ext == "" {
		return name
	}
	return strings.TrimSuffix(name, "."+ext)
}

// Rename renames the file within its parent folder. When the new name
// carries no extension, the file's current extension is kept; a supplied
// extension always wins. A leading dot alone is not an extension, so dot
// names like ".profile" keep the current extension too. Use RenameExact to
// rename verbatim.
func (f *File) Rename(name string) error {
	if validName(name) && strings.LastIndex(name, ".") <= 0 {
		if ext := f.Extension(); ext != "" {
			name += "." + ext
		}
	}
	return f.rename(name)
}

// RenameExact renames the file to exactly the given name, dropping the
// current extension when the name supplies none.
func (f *File) RenameExact(name string) error {
	return f.rename(name)
}

// MoveTo moves the file into the destination folder, keeping its name.
func (f *File) MoveTo(dest *Folder) error {
	return f.moveTo(dest)
}

// Delete removes the file from the backing store. The handle keeps its path
// but every subsequent operation will fail.
func (f *File) Delete() error {
	return f.deleteEntity(false)
}

// Read returns the file's full contents.
func (f *File) Read() ([]byte, error) {
	data, err := f.st.Read(f.p.loc())
	if err != nil {
		return nil, opError(OpRead, f.p.String(), err)
	}
	return data, nil
}

// Write replaces the file's contents.
func (f *File) Write(data []byte) error {
	if err := f.st.Write(f.p.loc(), data); err != nil {
		return opError(OpWrite, f.p.String(), err)
	}
	return nil
}

// Append adds data to the end of the file.
func (f *File) Append(data []byte) error {
	existing, err := f.st.Read(f.p.loc())
	if err != nil {
		return opError(OpWrite, f.p.String(), err)
	}
	combined := make([]byte, 0, len(existing)+len(data))
	combined = append(combined, existing...)
	combined = append(combined, data...)
	if err := f.st.Write(f.p.loc(), combined); err != nil {
		return opError(OpWrite, f.p.String(), err)
	}
	return nil
}
