package ports

// WorkspacePort locates build files under a workspace root.
type WorkspacePort interface {
	FindBuildFiles(root string) ([]string, error)
}
