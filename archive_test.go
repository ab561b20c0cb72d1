package arbor_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfs/arbor"
)

func seedArchiveTree(t *testing.T) (*arbor.Tree, *arbor.Folder) {
	t.Helper()
	tree, _ := newTestTree(t)
	src := seedFolder(t, tree, "/src")
	nested := seedFolder(t, tree, "/src/nested")

	_, err := src.CreateFileContaining("top.txt", []byte("top level"))
	require.NoError(t, err)
	_, err = src.CreateFileContaining(".hidden", []byte("secret"))
	require.NoError(t, err)
	_, err = nested.CreateFileContaining("deep.txt", []byte("deep contents"))
	require.NoError(t, err)
	return tree, src
}

func assertRestored(t *testing.T, dst *arbor.Folder) {
	t.Helper()

	top, err := dst.File("top.txt")
	require.NoError(t, err)
	data, err := top.Read()
	require.NoError(t, err)
	assert.Equal(t, "top level", string(data))

	hidden, err := dst.File(".hidden")
	require.NoError(t, err)
	data, err = hidden.Read()
	require.NoError(t, err)
	assert.Equal(t, "secret", string(data))

	nested, err := dst.Subfolder("nested")
	require.NoError(t, err)
	deep, err := nested.File("deep.txt")
	require.NoError(t, err)
	data, err = deep.Read()
	require.NoError(t, err)
	assert.Equal(t, "deep contents", string(data))
}

func TestZipUnzipRoundTrip(t *testing.T) {
	tree, src := seedArchiveTree(t)

	var buf bytes.Buffer
	require.NoError(t, src.Zip(&buf))

	dst := seedFolder(t, tree, "/dst")
	require.NoError(t, dst.Unzip(bytes.NewReader(buf.Bytes()), int64(buf.Len())))
	assertRestored(t, dst)
}

func TestTarGzRoundTrip(t *testing.T) {
	tree, src := seedArchiveTree(t)

	var buf bytes.Buffer
	require.NoError(t, src.TarGz(&buf))

	dst := seedFolder(t, tree, "/dst")
	require.NoError(t, dst.UntarGz(&buf))
	assertRestored(t, dst)
}

func buildZip(t *testing.T, entries map[string][]byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return &buf
}

func TestUnzipRejectsEscapingEntries(t *testing.T) {
	tree, _ := newTestTree(t)
	dst := seedFolder(t, tree, "/dst")

	buf := buildZip(t, map[string][]byte{"../escape.txt": []byte("bad")})
	err := dst.Unzip(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	var opErr *arbor.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, arbor.OpArchive, opErr.Op)
}

func TestUnzipMalformed(t *testing.T) {
	tree, _ := newTestTree(t)
	dst := seedFolder(t, tree, "/dst")

	payload := []byte("this is not a zip archive")
	err := dst.Unzip(bytes.NewReader(payload), int64(len(payload)))
	var opErr *arbor.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, arbor.OpArchive, opErr.Op)
}
