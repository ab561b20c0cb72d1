package arbor

import (
	"fmt"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
)

// DetectCharset guesses the character set of the file's contents. The guess
// is best-effort; plain ASCII typically detects as ISO-8859-1 or UTF-8.
func (f *File) DetectCharset() (string, error) {
	data, err := f.Read()
	if err != nil {
		return "", err
	}
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedEncoding, err)
	}
	return result.Charset, nil
}

// ReadString reads the file and decodes it to a UTF-8 string using the
// detected character set. Decoding is best-effort: contents that detect as
// UTF-8, fail detection, or detect as a charset with no registered decoder
// are returned as-is. Detection is a heuristic, so an unresolvable guess is
// not treated as an error.
func (f *File) ReadString() (string, error) {
	data, err := f.Read()
	if err != nil {
		return "", err
	}
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || isUTF8Charset(result.Charset) {
		return string(data), nil
	}
	enc, err := htmlindex.Get(result.Charset)
	if err != nil || enc == nil {
		return string(data), nil
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedEncoding, err)
	}
	return string(decoded), nil
}

// WriteString encodes s in the given character set and writes it to the
// file. An empty charset (or any UTF-8 spelling) writes the string verbatim.
// Unknown charsets and unencodable text fail with ErrUnsupportedEncoding.
func (f *File) WriteString(s, charset string) error {
	if charset == "" || isUTF8Charset(charset) {
		return f.Write([]byte(s))
	}
	enc, err := htmlindex.Get(charset)
	if err != nil || enc == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedEncoding, charset)
	}
	encoded, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedEncoding, err)
	}
	return f.Write(encoded)
}

func isUTF8Charset(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return true
	}
	return false
}
