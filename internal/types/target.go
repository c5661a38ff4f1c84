package types

// Target is a loaded, interned build target. Dependencies holds the
// parsed dependency addresses in declaration order with duplicates
// removed; they are not guaranteed to resolve until edge resolution
// has run. Tags, Description, Sources and SourceFiles are opaque
// metadata the resolver carries but never interprets.
type Target struct {
	Address      Address
	Kind         TargetKind
	Dependencies []Address
	Sources      []string
	SourceFiles  []string
	Tags         []string
	Description  string
	Requirements []string
}
