package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"buildgraph/internal/ports"
	"buildgraph/internal/types"
)

const (
	BuildOrderFile = "build.order"
	EdgesFile      = "graph.edges"
	SummaryFile    = "graph.summary"
)

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

// WriteBuildOrder writes one address per line in the order given. The
// caller is expected to pass a topological order; the writer does not
// re-sort.
func (a OutputFileAdapter) WriteBuildOrder(addresses []types.Address) error {
	path, err := a.ensurePath(BuildOrderFile)
	if err != nil {
		return err
	}
	var lines []string
	for _, addr := range addresses {
		lines = append(lines, addr.String())
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}

func (a OutputFileAdapter) WriteEdges(edges []types.EdgeRecord) error {
	path, err := a.ensurePath(EdgesFile)
	if err != nil {
		return err
	}
	ordered := append([]types.EdgeRecord(nil), edges...)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].From != ordered[j].From {
			return ordered[i].From < ordered[j].From
		}
		return ordered[i].To < ordered[j].To
	})
	var lines []string
	for _, edge := range ordered {
		lines = append(lines, fmt.Sprintf("%s -> %s", edge.From, edge.To))
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}

func (a OutputFileAdapter) WriteSummary(summary types.GraphSummary) error {
	path, err := a.ensurePath(SummaryFile)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(summary)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode graph summary").
			WithCause(err)
	}
	return os.WriteFile(path, data, 0644)
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

var _ ports.OutputPort = OutputFileAdapter{}
