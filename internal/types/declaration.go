package types

// TargetDecl is a single raw target declaration as written in a
// BUILD.yaml file. Path is normally derived from the build file's
// directory by the declaration source adapter; an explicit value wins
// so declarations can also be constructed in memory.
type TargetDecl struct {
	Path         string     `yaml:"path,omitempty"`
	Name         string     `yaml:"name"`
	Kind         TargetKind `yaml:"kind"`
	Dependencies []string   `yaml:"dependencies,omitempty"`
	Sources      []string   `yaml:"sources,omitempty"`
	Tags         []string   `yaml:"tags,omitempty"`
	Description  string     `yaml:"description,omitempty"`
	Requirements []string   `yaml:"requirements,omitempty"`

	// SourceFiles holds the expanded source list once the glob
	// patterns in Sources have been resolved against the workspace.
	SourceFiles []string `yaml:"-"`
}

// BuildFile is the on-disk schema of a BUILD.yaml file.
type BuildFile struct {
	Targets []TargetDecl `yaml:"targets"`
}
