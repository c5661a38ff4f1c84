package ports

import "buildgraph/internal/types"

// OutputReaderPort reads back the resolve outputs for inspection.
type OutputReaderPort interface {
	ReadBuildOrder(path string) ([]string, error)
	ReadEdges(path string) ([]types.EdgeRecord, error)
	ReadSummary(path string) (types.GraphSummary, error)
}
