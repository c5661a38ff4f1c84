package app

import (
	"context"

	"buildgraph/internal/core"
	"buildgraph/internal/types"
)

// Dependencies returns the dependency closure of a target, or only its
// direct dependencies when req.Direct is set.
func (s Service) Dependencies(ctx context.Context, req DependenciesRequest) (DependenciesResult, error) {
	graph, addr, err := s.loadGraphTarget(ctx, req.Workspace, req.Address)
	if err != nil {
		return DependenciesResult{}, err
	}
	var targets []types.Target
	if req.Direct {
		targets, err = graph.Dependencies(addr)
	} else {
		targets, err = graph.TransitiveDependencies(addr)
	}
	if err != nil {
		return DependenciesResult{}, err
	}
	return DependenciesResult{Addresses: addressStrings(targets)}, nil
}

func (s Service) loadGraphTarget(ctx context.Context, roots []string, rawAddress string) (*core.Graph, types.Address, error) {
	addr, err := core.ParseAddress(rawAddress, "")
	if err != nil {
		return nil, types.Address{}, err
	}
	graph, err := s.loadGraph(ctx, roots)
	if err != nil {
		return nil, types.Address{}, err
	}
	return graph, addr, nil
}

func addressStrings(targets []types.Target) []string {
	var out []string
	for _, target := range targets {
		out = append(out, target.Address.String())
	}
	return out
}
