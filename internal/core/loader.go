package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"buildgraph/internal/policies"
	"buildgraph/internal/shared"
	"buildgraph/internal/types"
)

// TargetLoader turns raw declarations into interned Target records.
// Loading is fail-fast: the first duplicate identity, invalid kind or
// malformed dependency address aborts the pass.
type TargetLoader struct {
	Policy policies.KindPolicy
}

func NewTargetLoader(policy policies.KindPolicy) TargetLoader {
	return TargetLoader{Policy: policy}
}

func (l TargetLoader) Load(ctx context.Context, decls []types.TargetDecl) ([]types.Target, error) {
	seen := map[types.Address]struct{}{}
	targets := make([]types.Target, 0, len(decls))
	for _, decl := range decls {
		addr, err := declAddress(decl)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[addr]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate target %s", addr))
		}
		seen[addr] = struct{}{}

		if err := l.Policy.ValidateDecl(addr, decl); err != nil {
			return nil, err
		}
		if decl.Kind == types.TargetKindRequirement {
			for _, requirement := range decl.Requirements {
				if _, err := ParseRequirement(requirement); err != nil {
					return nil, errbuilder.New().
						WithCode(errbuilder.CodeInvalidArgument).
						WithMsg(fmt.Sprintf("target %s: invalid requirement %q", addr, requirement)).
						WithCause(err)
				}
			}
		}

		deps, err := parseDependencies(addr, decl.Dependencies)
		if err != nil {
			return nil, err
		}
		targets = append(targets, types.Target{
			Address:      addr,
			Kind:         decl.Kind,
			Dependencies: deps,
			Sources:      decl.Sources,
			SourceFiles:  decl.SourceFiles,
			Tags:         decl.Tags,
			Description:  decl.Description,
			Requirements: decl.Requirements,
		})
	}
	log.Ctx(ctx).Debug().Int("targets", len(targets)).Msg("declarations loaded")
	return targets, nil
}

func declAddress(decl types.TargetDecl) (types.Address, error) {
	specPath := shared.CleanSpecPath(decl.Path)
	if specPath == "" || strings.HasPrefix(specPath, "/") || shared.HasDotSegment(specPath) {
		return types.Address{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("declaration %q has invalid path %q", decl.Name, decl.Path))
	}
	name := strings.TrimSpace(decl.Name)
	if name == "" || strings.ContainsAny(name, "/:") {
		return types.Address{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("declaration in %s has invalid name %q", specPath, decl.Name))
	}
	return types.Address{Path: specPath, Name: name}, nil
}

// parseDependencies resolves raw dependency references relative to the
// declaring target's path. Repeated references to the same address are
// collapsed, keeping first-occurrence order.
func parseDependencies(addr types.Address, raw []string) ([]types.Address, error) {
	var deps []types.Address
	seen := map[types.Address]struct{}{}
	for _, reference := range raw {
		dep, err := ParseAddress(reference, addr.Path)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("target %s: invalid dependency %q", addr, reference)).
				WithCause(err)
		}
		if _, ok := seen[dep]; ok {
			continue
		}
		seen[dep] = struct{}{}
		deps = append(deps, dep)
	}
	return deps, nil
}
