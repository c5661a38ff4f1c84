package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"buildgraph/internal/adapters"
	"buildgraph/internal/core"
	"buildgraph/internal/types"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	started := timeNow(s.Clock)
	graph, err := s.loadGraph(ctx, req.Workspace)
	if err != nil {
		return ResolveResult{}, err
	}

	order := graph.TopologicalOrder()
	addresses := make([]types.Address, 0, len(order))
	for _, target := range order {
		addresses = append(addresses, target.Address)
	}
	edges := graph.Edges()

	output := adapters.NewOutputFileAdapter(outputDir)
	if err := output.WriteBuildOrder(addresses); err != nil {
		return ResolveResult{}, err
	}
	if err := output.WriteEdges(edges); err != nil {
		return ResolveResult{}, err
	}
	if err := output.WriteSummary(buildSummary(graph, edges)); err != nil {
		return ResolveResult{}, err
	}
	log.Ctx(ctx).Info().
		Int("targets", graph.Len()).
		Int("edges", len(edges)).
		Dur("elapsed", timeNow(s.Clock).Sub(started)).
		Str("output", outputDir).
		Msg("resolve outputs written")
	return ResolveResult{
		TargetCount: graph.Len(),
		EdgeCount:   len(edges),
		OutputDir:   outputDir,
	}, nil
}

func buildSummary(graph *core.Graph, edges []types.EdgeRecord) types.GraphSummary {
	kinds := map[string]int{}
	hasDependents := map[string]struct{}{}
	for _, edge := range edges {
		hasDependents[edge.To] = struct{}{}
	}
	var roots, leaves []string
	for _, target := range graph.Targets() {
		kinds[string(target.Kind)]++
		addr := target.Address.String()
		if _, ok := hasDependents[addr]; !ok {
			roots = append(roots, addr)
		}
		if len(target.Dependencies) == 0 {
			leaves = append(leaves, addr)
		}
	}
	sort.Strings(roots)
	sort.Strings(leaves)
	return types.GraphSummary{
		Targets: graph.Len(),
		Edges:   len(edges),
		Kinds:   kinds,
		Roots:   roots,
		Leaves:  leaves,
	}
}
