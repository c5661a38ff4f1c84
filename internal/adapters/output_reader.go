package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"buildgraph/internal/ports"
	"buildgraph/internal/types"
)

type OutputReaderAdapter struct{}

func NewOutputReaderAdapter() OutputReaderAdapter {
	return OutputReaderAdapter{}
}

func (a OutputReaderAdapter) ReadBuildOrder(path string) ([]string, error) {
	data, err := readOutput(path)
	if err != nil {
		return nil, err
	}
	var addresses []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		addresses = append(addresses, trimmed)
	}
	return addresses, nil
}

func (a OutputReaderAdapter) ReadEdges(path string) ([]types.EdgeRecord, error) {
	data, err := readOutput(path)
	if err != nil {
		return nil, err
	}
	var edges []types.EdgeRecord
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		parts := strings.Split(trimmed, " -> ")
		if len(parts) != 2 {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("malformed edge line: %s", trimmed))
		}
		edges = append(edges, types.EdgeRecord{From: parts[0], To: parts[1]})
	}
	return edges, nil
}

func (a OutputReaderAdapter) ReadSummary(path string) (types.GraphSummary, error) {
	data, err := readOutput(path)
	if err != nil {
		return types.GraphSummary{}, err
	}
	var summary types.GraphSummary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return types.GraphSummary{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse graph summary: %s", path)).
			WithCause(err)
	}
	return summary, nil
}

func readOutput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("output file not found: %s", path)).
			WithCause(err)
	}
	return data, nil
}

var _ ports.OutputReaderPort = OutputReaderAdapter{}
