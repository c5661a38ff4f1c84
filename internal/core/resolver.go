package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"buildgraph/internal/types"
)

// GraphResolver converts loaded targets into a validated Graph. The
// pass is fail-fast: an unresolved dependency address or a dependency
// cycle aborts resolution and no partial graph is returned.
type GraphResolver struct{}

func NewGraphResolver() GraphResolver {
	return GraphResolver{}
}

func (r GraphResolver) Resolve(ctx context.Context, targets []types.Target) (*Graph, error) {
	byAddr := make(map[types.Address]types.Target, len(targets))
	order := make([]types.Address, 0, len(targets))
	for _, target := range targets {
		assert.NotEmpty(ctx, target.Address.Path, "target path must be set")
		assert.NotEmpty(ctx, target.Address.Name, "target name must be set")
		if _, ok := byAddr[target.Address]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate target %s", target.Address))
		}
		byAddr[target.Address] = target
		order = append(order, target.Address)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Less(order[j]) })

	deps := make(map[types.Address][]types.Address, len(targets))
	rdeps := map[types.Address][]types.Address{}
	for _, addr := range order {
		for _, dep := range byAddr[addr].Dependencies {
			if _, ok := byAddr[dep]; !ok {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeNotFound).
					WithMsg(fmt.Sprintf("unresolved dependency %s referenced by %s", dep, addr))
			}
			deps[addr] = append(deps[addr], dep)
			rdeps[dep] = append(rdeps[dep], addr)
		}
	}
	for dep := range rdeps {
		entries := rdeps[dep]
		sort.Slice(entries, func(i, j int) bool { return entries[i].Less(entries[j]) })
	}

	if cycle := findCycle(order, deps); len(cycle) > 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("cyclic dependency: %s", formatCycle(cycle)))
	}

	closures, err := lru.New[closureKey, []types.Address](closureCacheSize)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to allocate closure cache").
			WithCause(err)
	}

	graph := &Graph{
		targets:  byAddr,
		order:    order,
		deps:     deps,
		rdeps:    rdeps,
		closures: closures,
	}
	log.Ctx(ctx).Debug().
		Int("targets", graph.Len()).
		Int("edges", edgeCount(deps)).
		Msg("graph resolved")
	return graph, nil
}

const (
	colorWhite = iota
	colorGrey
	colorBlack
)

// findCycle runs a depth-first pass over the addresses in lexicographic
// order and returns the members of the first cycle found, in discovery
// order. A self-edge is reported as a one-member cycle.
func findCycle(order []types.Address, deps map[types.Address][]types.Address) []types.Address {
	colors := make(map[types.Address]int, len(order))
	var path []types.Address
	var cycle []types.Address

	var visit func(addr types.Address) bool
	visit = func(addr types.Address) bool {
		colors[addr] = colorGrey
		path = append(path, addr)
		for _, dep := range deps[addr] {
			switch colors[dep] {
			case colorGrey:
				start := 0
				for i, member := range path {
					if member == dep {
						start = i
						break
					}
				}
				cycle = append(cycle, path[start:]...)
				return true
			case colorWhite:
				if visit(dep) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		colors[addr] = colorBlack
		return false
	}

	for _, addr := range order {
		if colors[addr] == colorWhite {
			if visit(addr) {
				return cycle
			}
		}
	}
	return nil
}

func formatCycle(cycle []types.Address) string {
	parts := make([]string, 0, len(cycle)+1)
	for _, member := range cycle {
		parts = append(parts, member.String())
	}
	parts = append(parts, cycle[0].String())
	return strings.Join(parts, " -> ")
}

func edgeCount(deps map[types.Address][]types.Address) int {
	count := 0
	for _, entries := range deps {
		count += len(entries)
	}
	return count
}
