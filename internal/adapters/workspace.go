package adapters

import (
	"io/fs"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"buildgraph/internal/ports"
)

type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

func (a WorkspaceAdapter) FindBuildFiles(root string) ([]string, error) {
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is empty")
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if shouldSkipWorkspaceDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Base(path) == BuildFileName {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan workspace").
			WithCause(err)
	}
	return paths, nil
}

func shouldSkipWorkspaceDir(name string) bool {
	switch name {
	case ".git", "build", "dist", "out", "vendor", "node_modules", ".cache":
		return true
	default:
		return false
	}
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
