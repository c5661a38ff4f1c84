package app

import (
	"context"

	"buildgraph/internal/policies"
)

// List returns target addresses in topological order, optionally
// filtered by tag patterns. With RootsOnly set, only targets nothing
// depends on are returned.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	graph, err := s.loadGraph(ctx, req.Workspace)
	if err != nil {
		return ListResult{}, err
	}
	filter := policies.NewTagFilter(req.IncludeTags, req.ExcludeTags)
	var addresses []string
	for _, target := range graph.TopologicalOrder() {
		if !filter.Matches(target.Tags) {
			continue
		}
		if req.RootsOnly {
			dependents, err := graph.DirectDependents(target.Address)
			if err != nil {
				return ListResult{}, err
			}
			if len(dependents) > 0 {
				continue
			}
		}
		addresses = append(addresses, target.Address.String())
	}
	return ListResult{Addresses: addresses}, nil
}
