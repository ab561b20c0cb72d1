package arbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfs/arbor"
)

type manifest struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Version int      `json:"version" yaml:"version" toml:"version"`
	Tags    []string `json:"tags" yaml:"tags" toml:"tags"`
}

func TestJSONRoundTrip(t *testing.T) {
	tree, _ := newTestTree(t)
	dir := seedFolder(t, tree, "/cfg")
	f, err := dir.CreateFile("manifest.json")
	require.NoError(t, err)

	in := manifest{Name: "arbor", Version: 2, Tags: []string{"fs", "tree"}}
	require.NoError(t, f.WriteJSON(in))

	var out manifest
	require.NoError(t, f.ReadJSON(&out))
	assert.Equal(t, in, out)
}

func TestYAMLAndTOMLRoundTrip(t *testing.T) {
	tree, _ := newTestTree(t)
	dir := seedFolder(t, tree, "/cfg")
	in := manifest{Name: "arbor", Version: 3, Tags: []string{"a"}}

	yf, err := dir.CreateFile("manifest.yaml")
	require.NoError(t, err)
	require.NoError(t, yf.WriteYAML(in))
	var fromYAML manifest
	require.NoError(t, yf.ReadYAML(&fromYAML))
	assert.Equal(t, in, fromYAML)

	tf, err := dir.CreateFile("manifest.toml")
	require.NoError(t, err)
	require.NoError(t, tf.WriteTOML(in))
	var fromTOML manifest
	require.NoError(t, tf.ReadTOML(&fromTOML))
	assert.Equal(t, in, fromTOML)
}

func TestReadJSONMalformed(t *testing.T) {
	tree, _ := newTestTree(t)
	dir := seedFolder(t, tree, "/cfg")
	f, err := dir.CreateFileContaining("broken.json", []byte("{not json"))
	require.NoError(t, err)

	var out manifest
	err = f.ReadJSON(&out)
	var opErr *arbor.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, arbor.OpRead, opErr.Op)
}
