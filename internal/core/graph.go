package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	lru "github.com/hashicorp/golang-lru/v2"

	"buildgraph/internal/types"
)

// closureCacheSize bounds the memoized closure results per graph.
const closureCacheSize = 512

type closureKey struct {
	addr    types.Address
	reverse bool
}

// Graph is the validated, immutable set of targets and resolved
// dependency edges. A Graph is only produced by GraphResolver.Resolve
// and never mutated afterwards, so it is safe for unbounded concurrent
// traversal; the closure cache is internally locked.
type Graph struct {
	targets  map[types.Address]types.Target
	order    []types.Address
	deps     map[types.Address][]types.Address
	rdeps    map[types.Address][]types.Address
	closures *lru.Cache[closureKey, []types.Address]
}

func (g *Graph) Len() int {
	return len(g.order)
}

// Targets returns all targets in lexicographic (path, name) order.
func (g *Graph) Targets() []types.Target {
	out := make([]types.Target, 0, len(g.order))
	for _, addr := range g.order {
		out = append(out, g.targets[addr])
	}
	return out
}

func (g *Graph) Lookup(addr types.Address) (types.Target, bool) {
	target, ok := g.targets[addr]
	return target, ok
}

// Dependencies returns the direct dependencies of a target in
// declaration order.
func (g *Graph) Dependencies(addr types.Address) ([]types.Target, error) {
	if err := g.mustContain(addr); err != nil {
		return nil, err
	}
	return g.resolveAll(g.deps[addr]), nil
}

// DirectDependents returns the targets that depend on addr directly,
// in lexicographic order.
func (g *Graph) DirectDependents(addr types.Address) ([]types.Target, error) {
	if err := g.mustContain(addr); err != nil {
		return nil, err
	}
	return g.resolveAll(g.rdeps[addr]), nil
}

// TopologicalOrder returns all targets such that every dependency
// precedes its dependents. Ties among independent targets are broken
// by lexicographic (path, name) order, so the result is deterministic
// for a given declaration set.
func (g *Graph) TopologicalOrder() []types.Target {
	inDegree := make(map[types.Address]int, len(g.order))
	for _, addr := range g.order {
		inDegree[addr] = len(g.deps[addr])
	}

	var ready []types.Address
	for _, addr := range g.order {
		if inDegree[addr] == 0 {
			ready = append(ready, addr)
		}
	}

	out := make([]types.Target, 0, len(g.order))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return ready[i].Less(ready[j]) })
		next := ready[0]
		ready = ready[1:]
		out = append(out, g.targets[next])
		for _, dependent := range g.rdeps[next] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}
	return out
}

// TransitiveDependencies returns the dependency closure of a target,
// self excluded, in lexicographic order.
func (g *Graph) TransitiveDependencies(addr types.Address) ([]types.Target, error) {
	if err := g.mustContain(addr); err != nil {
		return nil, err
	}
	return g.resolveAll(g.closure(addr, false)), nil
}

// Dependents returns the reverse-edge closure of a target, self
// excluded, in lexicographic order.
func (g *Graph) Dependents(addr types.Address) ([]types.Target, error) {
	if err := g.mustContain(addr); err != nil {
		return nil, err
	}
	return g.resolveAll(g.closure(addr, true)), nil
}

// Edges returns every resolved dependency edge sorted by (from, to).
func (g *Graph) Edges() []types.EdgeRecord {
	var out []types.EdgeRecord
	for _, addr := range g.order {
		for _, dep := range g.deps[addr] {
			out = append(out, types.EdgeRecord{From: addr.String(), To: dep.String()})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

func (g *Graph) closure(addr types.Address, reverse bool) []types.Address {
	key := closureKey{addr: addr, reverse: reverse}
	if cached, ok := g.closures.Get(key); ok {
		return cached
	}
	edges := g.deps
	if reverse {
		edges = g.rdeps
	}
	seen := map[types.Address]struct{}{addr: {}}
	frontier := append([]types.Address(nil), edges[addr]...)
	var members []types.Address
	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]
		if _, ok := seen[next]; ok {
			continue
		}
		seen[next] = struct{}{}
		members = append(members, next)
		frontier = append(frontier, edges[next]...)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Less(members[j]) })
	g.closures.Add(key, members)
	return members
}

func (g *Graph) resolveAll(addrs []types.Address) []types.Target {
	out := make([]types.Target, 0, len(addrs))
	for _, addr := range addrs {
		out = append(out, g.targets[addr])
	}
	return out
}

func (g *Graph) mustContain(addr types.Address) error {
	if _, ok := g.targets[addr]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown target %s", addr))
	}
	return nil
}
