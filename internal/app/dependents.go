package app

import (
	"context"

	"buildgraph/internal/types"
)

// Dependents returns the targets that transitively depend on a target,
// or only its direct dependents when req.Direct is set. This is the
// impact-analysis view of the graph.
func (s Service) Dependents(ctx context.Context, req DependentsRequest) (DependentsResult, error) {
	graph, addr, err := s.loadGraphTarget(ctx, req.Workspace, req.Address)
	if err != nil {
		return DependentsResult{}, err
	}
	var targets []types.Target
	if req.Direct {
		targets, err = graph.DirectDependents(addr)
	} else {
		targets, err = graph.Dependents(addr)
	}
	if err != nil {
		return DependentsResult{}, err
	}
	return DependentsResult{Addresses: addressStrings(targets)}, nil
}
