package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// Requirement is a parsed PEP 440 requirement string attached to a
// python_requirement target, e.g. "ansicolors>=1.0.2".
type Requirement struct {
	Name       string
	Specifiers pep440.Specifiers
	HasSpec    bool
}

// specifierStart marks where a requirement's version specifier begins.
const specifierStart = "<>=!~"

// ParseRequirement splits a raw requirement into its distribution name
// and PEP 440 specifier set. A bare name with no specifier is valid
// and matches any version.
func ParseRequirement(raw string) (Requirement, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty requirement")
	}
	idx := strings.IndexAny(trimmed, specifierStart)
	if idx < 0 {
		if strings.ContainsAny(trimmed, " \t") {
			return Requirement{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid requirement: %s", raw))
		}
		return Requirement{Name: trimmed}, nil
	}
	name := strings.TrimSpace(trimmed[:idx])
	if name == "" {
		return Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("requirement missing distribution name: %s", raw))
	}
	spec, err := pep440.NewSpecifiers(strings.TrimSpace(trimmed[idx:]))
	if err != nil {
		return Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid requirement specifier: %s", raw)).
			WithCause(err)
	}
	return Requirement{Name: name, Specifiers: spec, HasSpec: true}, nil
}
