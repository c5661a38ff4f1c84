package adapters

import (
	"fmt"
	"os"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/bmatcuk/doublestar/v4"

	"buildgraph/internal/ports"
)

// SourceGlobAdapter expands source glob patterns relative to a target's
// directory. Patterns that match nothing yield an empty result; a
// malformed pattern is an error.
type SourceGlobAdapter struct{}

func NewSourceGlobAdapter() SourceGlobAdapter {
	return SourceGlobAdapter{}
}

func (a SourceGlobAdapter) Expand(dir string, patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string
	fsys := os.DirFS(dir)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid source pattern %q", pattern)).
				WithCause(err)
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}
	sort.Strings(files)
	return files, nil
}

var _ ports.SourceExpanderPort = SourceGlobAdapter{}
