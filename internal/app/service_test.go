package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeWorkspace lays out a small python-style workspace with a
// library layer, a binary plus its tests, and one third-party
// requirement.
func writeWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"src/lib/BUILD.yaml": `
targets:
  - name: core
    kind: library
    sources:
      - "**/*.py"
  - name: util
    kind: library
    dependencies:
      - ":core"
`,
		"src/app/BUILD.yaml": `
targets:
  - name: app
    kind: binary
    dependencies:
      - src/lib:core
      - src/lib:util
      - third_party/python:ansicolors
    tags:
      - release
  - name: tests
    kind: test
    dependencies:
      - ":app"
    tags:
      - dev
`,
		"third_party/python/BUILD.yaml": `
targets:
  - name: ansicolors
    kind: python_requirement
    requirements:
      - "ansicolors>=1.0.2"
    tags:
      - third_party
`,
		"src/lib/core.py":  "",
		"src/lib/extra.py": "",
		"src/app/main.py":  "",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// workspaceOrder is the topological order writeWorkspace produces.
var workspaceOrder = []string{
	"src/lib:core",
	"src/lib:util",
	"third_party/python:ansicolors",
	"src/app:app",
	"src/app:tests",
}

func writeSingleBuildFile(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, "pkg", "BUILD.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return root
}
