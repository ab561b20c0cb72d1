package arbor

import (
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Size returns the file's size in bytes.
func (f *File) Size() (int64, error) {
	info, err := f.st.Info(f.p.loc())
	if err != nil {
		return 0, opError(OpRead, f.p.String(), err)
	}
	return info.Size, nil
}

// ModTime returns the file's last modification time.
func (f *File) ModTime() (time.Time, error) {
	info, err := f.st.Info(f.p.loc())
	if err != nil {
		return time.Time{}, opError(OpRead, f.p.String(), err)
	}
	return info.ModTime, nil
}

// MIMEType sniffs the file's MIME type from its contents. Content-based
// detection is deliberate: extensions lie.
func (f *File) MIMEType() (string, error) {
	data, err := f.Read()
	if err != nil {
		return "", err
	}
	return mimetype.Detect(data).String(), nil
}

// IsText reports whether the file's contents look like text.
func (f *File) IsText() (bool, error) {
	mime, err := f.MIMEType()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(mime, "text/"), nil
}

// TotalSize sums the sizes of every file under the folder, hidden files
// included.
func (d *Folder) TotalSize() (int64, error) {
	var total int64
	for f := range d.Files().Recursive().IncludingHidden().All() {
		size, err := f.Size()
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}
