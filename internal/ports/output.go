package ports

import "buildgraph/internal/types"

// OutputPort writes the resolve outputs: build.order, graph.edges and
// graph.summary.
type OutputPort interface {
	WriteBuildOrder(addresses []types.Address) error
	WriteEdges(edges []types.EdgeRecord) error
	WriteSummary(summary types.GraphSummary) error
}
