package app

import (
	"context"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"buildgraph/internal/core"
	"buildgraph/internal/policies"
	"buildgraph/internal/types"
)

// loadGraph runs the full load-and-validate pass over the given
// workspace roots: scan for build files, parse declarations, expand
// source globs, intern targets and resolve the graph. Any failure
// aborts the pass; no partial graph is ever returned.
func (s Service) loadGraph(ctx context.Context, roots []string) (*core.Graph, error) {
	if len(roots) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one workspace root is required")
	}

	var decls []types.TargetDecl
	for _, root := range roots {
		paths, err := s.Workspace.FindBuildFiles(root)
		if err != nil {
			return nil, err
		}
		loaded, err := s.Declarations.LoadBuildFiles(root, paths)
		if err != nil {
			return nil, err
		}
		for i := range loaded {
			if err := s.expandSources(root, &loaded[i]); err != nil {
				return nil, err
			}
		}
		decls = append(decls, loaded...)
	}
	if len(decls) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no build files found under workspace roots")
	}

	loader := core.NewTargetLoader(policies.NewKindPolicy())
	targets, err := loader.Load(ctx, decls)
	if err != nil {
		return nil, err
	}
	graph, err := core.NewGraphResolver().Resolve(ctx, targets)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().Int("targets", graph.Len()).Msg("workspace graph loaded")
	return graph, nil
}

func (s Service) expandSources(root string, decl *types.TargetDecl) error {
	if len(decl.Sources) == 0 {
		return nil
	}
	files, err := s.Sources.Expand(filepath.Join(root, filepath.FromSlash(decl.Path)), decl.Sources)
	if err != nil {
		return err
	}
	decl.SourceFiles = files
	return nil
}
