package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"buildgraph/internal/shared"
	"buildgraph/internal/types"
)

// ParseAddress parses a dependency reference into an Address. Three
// forms are accepted: "path:name", ":name" (relative to basePath), and
// a bare "path" whose name defaults to the last path segment.
func ParseAddress(raw string, basePath string) (types.Address, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return types.Address{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty target address")
	}
	if strings.Count(trimmed, ":") > 1 {
		return types.Address{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid target address: %s", raw))
	}

	pathPart := trimmed
	namePart := ""
	if idx := strings.Index(trimmed, ":"); idx >= 0 {
		pathPart = trimmed[:idx]
		namePart = strings.TrimSpace(trimmed[idx+1:])
		if namePart == "" {
			return types.Address{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("target address missing name: %s", raw))
		}
	}

	var specPath string
	if strings.TrimSpace(pathPart) == "" {
		specPath = shared.CleanSpecPath(basePath)
		if specPath == "" {
			return types.Address{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("relative address %s requires a base path", raw))
		}
	} else {
		specPath = shared.CleanSpecPath(pathPart)
	}
	if err := validateSpecPath(specPath, raw); err != nil {
		return types.Address{}, err
	}

	if namePart == "" {
		segments := strings.Split(specPath, "/")
		namePart = segments[len(segments)-1]
	}
	if err := validateTargetName(namePart, raw); err != nil {
		return types.Address{}, err
	}
	return types.Address{Path: specPath, Name: namePart}, nil
}

func validateSpecPath(specPath string, raw string) error {
	if specPath == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("target address has empty path: %s", raw))
	}
	if strings.HasPrefix(specPath, "/") || shared.HasDotSegment(specPath) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("target path must be relative and stay inside the workspace: %s", raw))
	}
	return nil
}

func validateTargetName(name string, raw string) error {
	if name == "" || strings.ContainsAny(name, "/:") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid target name in address: %s", raw))
	}
	return nil
}
