package types

// EdgeRecord is one resolved dependency edge as written to the
// graph.edges output file.
type EdgeRecord struct {
	From string
	To   string
}

// GraphSummary is the graph.summary output schema. Roots are targets
// nothing depends on; leaves are targets with no dependencies.
type GraphSummary struct {
	Targets int            `yaml:"targets"`
	Edges   int            `yaml:"edges"`
	Kinds   map[string]int `yaml:"kinds"`
	Roots   []string       `yaml:"roots"`
	Leaves  []string       `yaml:"leaves"`
}
