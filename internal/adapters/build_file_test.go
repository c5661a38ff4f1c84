package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildgraph/internal/types"
)

func writeBuildFile(t *testing.T, root string, dir string, content string) string {
	t.Helper()
	full := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(full, 0755))
	path := filepath.Join(full, BuildFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuildFileAdapterDerivesPathFromDirectory(t *testing.T) {
	root := t.TempDir()
	path := writeBuildFile(t, root, "src/lib", `
targets:
  - name: core
    kind: library
    sources:
      - "**/*.py"
`)

	decls, err := NewBuildFileAdapter().LoadBuildFiles(root, []string{path})
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "src/lib", decls[0].Path)
	assert.Equal(t, "core", decls[0].Name)
	assert.Equal(t, types.TargetKindLibrary, decls[0].Kind)
}

func TestBuildFileAdapterKeepsExplicitPath(t *testing.T) {
	root := t.TempDir()
	path := writeBuildFile(t, root, "src/lib", `
targets:
  - name: core
    kind: library
    path: custom/location
`)

	decls, err := NewBuildFileAdapter().LoadBuildFiles(root, []string{path})
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "custom/location", decls[0].Path)
}

func TestBuildFileAdapterRejectsRootLevelFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, BuildFileName)
	require.NoError(t, os.WriteFile(path, []byte("targets: []"), 0644))

	_, err := NewBuildFileAdapter().LoadBuildFiles(root, []string{path})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "subdirectory")
}

func TestBuildFileAdapterMissingFile(t *testing.T) {
	root := t.TempDir()
	_, err := NewBuildFileAdapter().LoadBuildFiles(root, []string{filepath.Join(root, "src", BuildFileName)})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestBuildFileAdapterMalformedYAML(t *testing.T) {
	root := t.TempDir()
	path := writeBuildFile(t, root, "src/lib", "targets: [\n")

	_, err := NewBuildFileAdapter().LoadBuildFiles(root, []string{path})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "failed to parse build file")
}
