package app

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"buildgraph/internal/adapters"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	order, err := s.OutputReader.ReadBuildOrder(filepath.Join(outputDir, adapters.BuildOrderFile))
	if err != nil {
		return InspectResult{}, err
	}
	edges, err := s.OutputReader.ReadEdges(filepath.Join(outputDir, adapters.EdgesFile))
	if err != nil {
		return InspectResult{}, err
	}
	summary, err := s.OutputReader.ReadSummary(filepath.Join(outputDir, adapters.SummaryFile))
	if err != nil {
		return InspectResult{}, err
	}
	return InspectResult{
		TargetCount: summary.Targets,
		EdgeCount:   len(edges),
		Kinds:       summary.Kinds,
		BuildOrder:  order,
	}, nil
}
