package ports

// SourceExpanderPort expands source glob patterns into concrete file
// lists. The graph core never touches the filesystem; expansion is an
// adapter concern.
type SourceExpanderPort interface {
	Expand(dir string, patterns []string) ([]string, error)
}
