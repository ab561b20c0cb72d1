package memstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfs/arbor/store"
	"github.com/arborfs/arbor/store/memstore"
)

func TestNewStartsAtRoot(t *testing.T) {
	st := memstore.New()

	assert.Equal(t, store.KindFolder, st.Stat("/"))
	wd, err := st.WorkingDir()
	require.NoError(t, err)
	assert.Equal(t, "/", wd)

	_, ok := st.HomeDir()
	assert.False(t, ok)
	_, ok = st.TempDir()
	assert.False(t, ok)
}

func TestCreateAndStat(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.CreateFolder("/a"))
	require.NoError(t, st.CreateFile("/a/f.txt"))

	assert.Equal(t, store.KindFolder, st.Stat("/a"))
	assert.Equal(t, store.KindFile, st.Stat("/a/f.txt"))
	assert.Equal(t, store.KindNotFound, st.Stat("/a/missing"))
}

func TestCreateFailsOnExistingOrOrphan(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.CreateFolder("/a"))

	assert.Error(t, st.CreateFolder("/a"))
	assert.Error(t, st.CreateFile("/a"))
	assert.Error(t, st.CreateFile("/missing/f.txt"))
}

func TestListSorted(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.CreateFolder("/d"))
	require.NoError(t, st.CreateFile("/d/z.txt"))
	require.NoError(t, st.CreateFolder("/d/a"))
	require.NoError(t, st.CreateFile("/d/m.txt"))

	entries, err := st.List("/d")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, store.Entry{Name: "a", Kind: store.KindFolder}, entries[0])
	assert.Equal(t, store.Entry{Name: "m.txt", Kind: store.KindFile}, entries[1])
	assert.Equal(t, store.Entry{Name: "z.txt", Kind: store.KindFile}, entries[2])

	_, err = st.List("/d/z.txt")
	assert.Error(t, err)
	_, err = st.List("/nope")
	assert.Error(t, err)
}

func TestReadWriteIsolation(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.Write("/f.txt", []byte("hello")))

	data, err := st.Read("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	// Mutating the returned slice must not leak into the store.
	data[0] = 'X'
	again, err := st.Read("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(again))
}

func TestWriteRejectsFolderTarget(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.CreateFolder("/d"))
	assert.Error(t, st.Write("/d", []byte("x")))
	assert.Error(t, st.Write("/missing/f.txt", []byte("x")))
}

func TestDelete(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.CreateFolder("/d"))
	require.NoError(t, st.CreateFile("/d/f.txt"))

	assert.Error(t, st.Delete("/d", false), "non-empty folder needs recursive")
	require.NoError(t, st.Delete("/d", true))
	assert.Equal(t, store.KindNotFound, st.Stat("/d"))
	assert.Error(t, st.Delete("/d", false))
}

func TestRelocate(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.CreateFolder("/a"))
	require.NoError(t, st.CreateFolder("/b"))
	require.NoError(t, st.Write("/a/f.txt", []byte("payload")))

	require.NoError(t, st.Move("/a/f.txt", "/b/f.txt"))
	assert.Equal(t, store.KindNotFound, st.Stat("/a/f.txt"))
	data, err := st.Read("/b/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, st.CreateFile("/b/other.txt"))
	assert.Error(t, st.Rename("/b/f.txt", "/b/other.txt"), "existing target")
	assert.Error(t, st.Move("/nope", "/b/x"))
}

func TestRelocateRejectsOwnSubtree(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.CreateFolder("/a"))
	require.NoError(t, st.CreateFolder("/a/b"))

	assert.Error(t, st.Move("/a", "/a/b/a"))
	assert.Error(t, st.Rename("/a", "/a/b"))

	// The tree is untouched after the refusal.
	assert.Equal(t, store.KindFolder, st.Stat("/a"))
	assert.Equal(t, store.KindFolder, st.Stat("/a/b"))
}

func TestInfo(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.Write("/f.txt", []byte("12345")))

	info, err := st.Info("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size)
	assert.False(t, info.ModTime.IsZero())

	_, err = st.Info("/missing")
	assert.Error(t, err)
}

func TestConfiguredLocations(t *testing.T) {
	st := memstore.New()
	st.SetWorkingDir("/work")
	st.SetHomeDir("/home/me")
	st.SetTempDir("/tmp")

	wd, err := st.WorkingDir()
	require.NoError(t, err)
	assert.Equal(t, "/work", wd)

	home, ok := st.HomeDir()
	require.True(t, ok)
	assert.Equal(t, "/home/me", home)

	tmp, ok := st.TempDir()
	require.True(t, ok)
	assert.Equal(t, "/tmp", tmp)
}
