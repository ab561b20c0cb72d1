package arbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborfs/arbor"
)

func seedSearchTree(t *testing.T) (*arbor.Tree, *arbor.Folder) {
	t.Helper()
	tree, _ := newTestTree(t)
	dir := seedFolder(t, tree, "/proj")
	src := seedFolder(t, tree, "/proj/src")
	docs := seedFolder(t, tree, "/proj/docs")

	for folder, names := range map[*arbor.Folder][]string{
		dir:  {"README.md", "main.go"},
		src:  {"lib.go", "lib_test.go"},
		docs: {"guide.md"},
	} {
		for _, name := range names {
			_, err := folder.CreateFile(name)
			require.NoError(t, err)
		}
	}
	return tree, dir
}

func TestGlobMatchesRelativePaths(t *testing.T) {
	_, dir := seedSearchTree(t)

	matches, err := dir.Glob("**/*.go")
	require.NoError(t, err)
	var paths []string
	for _, f := range matches {
		paths = append(paths, f.Path())
	}
	assert.Equal(t, []string{
		"/proj/main.go",
		"/proj/src/lib.go",
		"/proj/src/lib_test.go",
	}, paths)
}

func TestGlobSingleLevel(t *testing.T) {
	_, dir := seedSearchTree(t)

	matches, err := dir.Glob("*.md")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "/proj/README.md", matches[0].Path())
}

func TestGlobInvalidPattern(t *testing.T) {
	_, dir := seedSearchTree(t)

	_, err := dir.Glob("[unclosed")
	var invalid *arbor.InvalidPathError
	assert.ErrorAs(t, err, &invalid)
}

func TestFindFilesByName(t *testing.T) {
	_, dir := seedSearchTree(t)

	// memstore has no Walker capability, so this exercises the portable
	// fallback traversal.
	paths, err := dir.FindFiles("*.go")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/proj/main.go",
		"/proj/src/lib.go",
		"/proj/src/lib_test.go",
	}, paths)

	paths, err = dir.FindFiles("*.md")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/proj/README.md",
		"/proj/docs/guide.md",
	}, paths)
}

func TestFindFilesInvalidPattern(t *testing.T) {
	_, dir := seedSearchTree(t)

	_, err := dir.FindFiles("[unclosed")
	var invalid *arbor.InvalidPathError
	assert.ErrorAs(t, err, &invalid)
}
