package policies

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"buildgraph/internal/types"
)

// KindPolicy validates target kinds and the per-kind shape rules that
// declarations must satisfy before they enter the graph.
type KindPolicy struct{}

var validTargetKinds = map[types.TargetKind]struct{}{
	types.TargetKindAlias:       {},
	types.TargetKindFiles:       {},
	types.TargetKindLibrary:     {},
	types.TargetKindBinary:      {},
	types.TargetKindTest:        {},
	types.TargetKindRequirement: {},
}

func NewKindPolicy() KindPolicy {
	return KindPolicy{}
}

func (p KindPolicy) ValidateDecl(addr types.Address, decl types.TargetDecl) error {
	if decl.Kind == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("target %s missing kind", addr))
	}
	if _, ok := validTargetKinds[decl.Kind]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("target %s has invalid kind %s", addr, decl.Kind))
	}
	switch decl.Kind {
	case types.TargetKindAlias:
		if len(decl.Dependencies) == 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("alias target %s must declare dependencies", addr))
		}
		if len(decl.Sources) > 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("alias target %s must not declare sources", addr))
		}
		if len(decl.Requirements) > 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("alias target %s must not declare requirements", addr))
		}
	case types.TargetKindFiles:
		if len(decl.Sources) == 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("files target %s must declare sources", addr))
		}
		if len(decl.Requirements) > 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("files target %s must not declare requirements", addr))
		}
	case types.TargetKindRequirement:
		if len(decl.Requirements) == 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("python_requirement target %s must declare requirements", addr))
		}
		if len(decl.Sources) > 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("python_requirement target %s must not declare sources", addr))
		}
	}
	return nil
}
