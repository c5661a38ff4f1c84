package ports

import "buildgraph/internal/types"

// DeclarationSourcePort loads raw target declarations from build files.
// Each declaration's Path is derived from its build file's directory
// relative to the workspace root.
type DeclarationSourcePort interface {
	LoadBuildFiles(root string, paths []string) ([]types.TargetDecl, error)
}
