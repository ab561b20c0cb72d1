package osstore_test

import (
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfs/arbor/store"
	"github.com/arborfs/arbor/store/osstore"
)

func TestStatAndInfo(t *testing.T) {
	st := osstore.New()
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, st.Write(file, []byte("12345")))

	assert.Equal(t, store.KindFolder, st.Stat(dir))
	assert.Equal(t, store.KindFile, st.Stat(file))
	assert.Equal(t, store.KindNotFound, st.Stat(filepath.Join(dir, "missing")))

	info, err := st.Info(file)
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size)
}

func TestCreateFileExclusive(t *testing.T) {
	st := osstore.New()
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")

	require.NoError(t, st.Write(file, []byte("keep me")))
	assert.Error(t, st.CreateFile(file), "existing file must not be truncated")

	data, err := st.Read(file)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestList(t *testing.T) {
	st := osstore.New()
	dir := t.TempDir()
	require.NoError(t, st.CreateFolder(filepath.Join(dir, "sub")))
	require.NoError(t, st.CreateFile(filepath.Join(dir, "a.txt")))

	entries, err := st.List(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, store.Entry{Name: "a.txt", Kind: store.KindFile}, entries[0])
	assert.Equal(t, store.Entry{Name: "sub", Kind: store.KindFolder}, entries[1])
}

func TestDeleteSemantics(t *testing.T) {
	st := osstore.New()
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, st.CreateFolder(sub))
	require.NoError(t, st.CreateFile(filepath.Join(sub, "f.txt")))

	assert.Error(t, st.Delete(sub, false), "non-empty folder needs recursive")
	require.NoError(t, st.Delete(sub, true))
	assert.Error(t, st.Delete(sub, true), "deleting a missing path must fail")
}

func TestMoveRefusesExistingTarget(t *testing.T) {
	st := osstore.New()
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, st.Write(src, []byte("a")))
	require.NoError(t, st.Write(dst, []byte("b")))

	assert.Error(t, st.Move(src, dst))

	data, err := st.Read(dst)
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestWalkFiles(t *testing.T) {
	st := osstore.New()
	dir := t.TempDir()
	require.NoError(t, st.CreateFolder(filepath.Join(dir, "sub")))
	require.NoError(t, st.Write(filepath.Join(dir, "a.txt"), nil))
	require.NoError(t, st.Write(filepath.Join(dir, "sub", "b.txt"), nil))

	var mu sync.Mutex
	var found []string
	err := st.WalkFiles(dir, func(path string) error {
		mu.Lock()
		found = append(found, filepath.Base(path))
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	sort.Strings(found)
	assert.Equal(t, []string{"a.txt", "b.txt"}, found)
}
