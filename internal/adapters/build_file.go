package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"buildgraph/internal/ports"
	"buildgraph/internal/shared"
	"buildgraph/internal/types"
)

// BuildFileName is the declaration file the workspace scanner looks for.
const BuildFileName = "BUILD.yaml"

type BuildFileAdapter struct{}

func NewBuildFileAdapter() BuildFileAdapter {
	return BuildFileAdapter{}
}

func (a BuildFileAdapter) LoadBuildFiles(root string, paths []string) ([]types.TargetDecl, error) {
	var decls []types.TargetDecl
	for _, path := range paths {
		loaded, err := a.load(root, path)
		if err != nil {
			return nil, err
		}
		decls = append(decls, loaded...)
	}
	return decls, nil
}

func (a BuildFileAdapter) load(root string, path string) ([]types.TargetDecl, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("build file not found: %s", path)).
			WithCause(err)
	}
	var file types.BuildFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse build file: %s", path)).
			WithCause(err)
	}

	specPath, err := declPathFor(root, path)
	if err != nil {
		return nil, err
	}
	decls := make([]types.TargetDecl, 0, len(file.Targets))
	for _, decl := range file.Targets {
		if decl.Path == "" {
			decl.Path = specPath
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// declPathFor derives the declaration path from the build file's
// directory relative to the workspace root. Build files directly at
// the root are rejected since a target path must be non-empty.
func declPathFor(root string, path string) (string, error) {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("build file %s is outside workspace root %s", path, root)).
			WithCause(err)
	}
	specPath := shared.CleanSpecPath(filepath.ToSlash(rel))
	if specPath == "" || shared.HasDotSegment(specPath) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("build file must live in a subdirectory of the workspace root: %s", path))
	}
	return specPath, nil
}

var _ ports.DeclarationSourcePort = BuildFileAdapter{}
