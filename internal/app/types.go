package app

type ValidateRequest struct {
	Workspace []string
}

type ValidateResult struct {
	TargetCount int
}

type ResolveRequest struct {
	Workspace []string
	OutputDir string
}

type ResolveResult struct {
	TargetCount int
	EdgeCount   int
	OutputDir   string
}

type ListRequest struct {
	Workspace   []string
	IncludeTags []string
	ExcludeTags []string
	RootsOnly   bool
}

type ListResult struct {
	Addresses []string
}

type DependenciesRequest struct {
	Workspace []string
	Address   string
	Direct    bool
}

type DependenciesResult struct {
	Addresses []string
}

type DependentsRequest struct {
	Workspace []string
	Address   string
	Direct    bool
}

type DependentsResult struct {
	Addresses []string
}

type InspectRequest struct {
	OutputDir string
}

type InspectResult struct {
	TargetCount int
	EdgeCount   int
	Kinds       map[string]int
	BuildOrder  []string
}
