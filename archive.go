package arbor

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

// Zip writes a zip archive of the folder's entire subtree (hidden entries
// included) to w. Entry names are slash-separated paths relative to the
// folder.
func (d *Folder) Zip(w io.Writer) error {
	zw := zip.NewWriter(w)
	err := d.walkForArchive(func(rel string, data []byte) error {
		header := &zip.FileHeader{Name: rel, Method: zip.Deflate, Modified: time.Now()}
		fw, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		_, err = fw.Write(data)
		return err
	})
	if err != nil {
		zw.Close()
		return opError(OpArchive, d.p.String(), err)
	}
	if err := zw.Close(); err != nil {
		return opError(OpArchive, d.p.String(), err)
	}
	return nil
}

// Unzip extracts a zip archive into the folder, creating intermediate
// subfolders as needed.
func (d *Folder) Unzip(r io.ReaderAt, size int64) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return opError(OpArchive, d.p.String(), err)
	}
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			if _, err := d.ensureFolder(strings.TrimSuffix(entry.Name, "/")); err != nil {
				return err
			}
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return opError(OpArchive, d.p.String(), err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return opError(OpArchive, d.p.String(), err)
		}
		if err := d.restoreFile(entry.Name, data); err != nil {
			return err
		}
	}
	return nil
}

// TarGz writes a gzip-compressed tar archive of the folder's subtree to w.
func (d *Folder) TarGz(w io.Writer) error {
	gw := gzip.NewWriter(w)
	tw := tar.NewWriter(gw)
	err := d.walkForArchive(func(rel string, data []byte) error {
		header := &tar.Header{
			Name:    rel,
			Mode:    0o644,
			Size:    int64(len(data)),
			ModTime: time.Now(),
		}
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		_, err := tw.Write(data)
		return err
	})
	if err == nil {
		err = tw.Close()
	} else {
		tw.Close()
	}
	if err == nil {
		err = gw.Close()
	} else {
		gw.Close()
	}
	if err != nil {
		return opError(OpArchive, d.p.String(), err)
	}
	return nil
}

// UntarGz extracts a gzip-compressed tar archive into the folder.
func (d *Folder) UntarGz(r io.Reader) error {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return opError(OpArchive, d.p.String(), err)
	}
	defer gr.Close()
	tr := tar.NewReader(gr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return opError(OpArchive, d.p.String(), err)
		}
		switch header.Typeflag {
		case tar.TypeDir:
			if _, err := d.ensureFolder(strings.TrimSuffix(header.Name, "/")); err != nil {
				return err
			}
		case tar.TypeReg:
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, tr); err != nil {
				return opError(OpArchive, d.p.String(), err)
			}
			if err := d.restoreFile(header.Name, buf.Bytes()); err != nil {
				return err
			}
		}
	}
}

// walkForArchive feeds every file in the subtree to fn as (relative path,
// contents), in traversal order.
func (d *Folder) walkForArchive(fn func(rel string, data []byte) error) error {
	for f := range d.Files().Recursive().IncludingHidden().All() {
		rel := strings.TrimPrefix(f.Path(), d.p.String())
		data, err := f.Read()
		if err != nil {
			return err
		}
		if err := fn(rel, data); err != nil {
			return err
		}
	}
	return nil
}

// ensureFolder resolves (creating as needed) a slash-separated relative
// folder path below d. Parent-escaping components are rejected.
func (d *Folder) ensureFolder(rel string) (*Folder, error) {
	current := d
	for _, part := range strings.Split(rel, Separator) {
		if part == "" {
			continue
		}
		if !validName(part) {
			return nil, opError(OpArchive, d.p.String(), fmt.Errorf("unsafe entry path %q", rel))
		}
		next, err := current.CreateSubfolderIfNeeded(part)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// restoreFile writes an extracted archive entry below d.
func (d *Folder) restoreFile(rel string, data []byte) error {
	dir := d
	if idx := strings.LastIndex(rel, Separator); idx >= 0 {
		parent, err := d.ensureFolder(rel[:idx])
		if err != nil {
			return err
		}
		dir = parent
		rel = rel[idx+1:]
	}
	if !validName(rel) {
		return opError(OpArchive, d.p.String(), fmt.Errorf("unsafe entry name %q", rel))
	}
	f, err := dir.CreateFileIfNeeded(rel)
	if err != nil {
		return err
	}
	return f.Write(data)
}
