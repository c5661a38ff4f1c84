package types

import "fmt"

// Address identifies a target by its declaration path and target name.
// The (path, name) pair is unique within a graph.
type Address struct {
	Path string
	Name string
}

func (a Address) String() string {
	return fmt.Sprintf("%s:%s", a.Path, a.Name)
}

// Less orders addresses lexicographically by (path, name). All
// deterministic orderings in the graph derive from this.
func (a Address) Less(other Address) bool {
	if a.Path != other.Path {
		return a.Path < other.Path
	}
	return a.Name < other.Name
}
