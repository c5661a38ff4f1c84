package policies

import "strings"

// TagFilter selects targets by their declared tags. Include patterns
// widen the selection (empty means select all), exclude patterns
// narrow it and win on conflict. Patterns are exact names, "prefix*"
// forms, or the bare wildcard "*"; they are compiled once at
// construction.
type TagFilter struct {
	include []tagPattern
	exclude []tagPattern
}

type tagPattern struct {
	kind patternKind
	name string
}

type patternKind int

const (
	patternExact patternKind = iota
	patternPrefix
	patternWildcard
)

func NewTagFilter(include []string, exclude []string) TagFilter {
	return TagFilter{
		include: compileTagPatterns(include),
		exclude: compileTagPatterns(exclude),
	}
}

// Matches reports whether a target carrying the given tags passes the
// filter.
func (f TagFilter) Matches(tags []string) bool {
	if matchesAny(f.exclude, tags) {
		return false
	}
	if len(f.include) == 0 {
		return true
	}
	return matchesAny(f.include, tags)
}

func compileTagPatterns(patterns []string) []tagPattern {
	var out []tagPattern
	for _, pattern := range patterns {
		trimmed := strings.TrimSpace(pattern)
		if trimmed == "" {
			continue
		}
		if trimmed == "*" {
			out = append(out, tagPattern{kind: patternWildcard})
			continue
		}
		if strings.HasSuffix(trimmed, "*") {
			out = append(out, tagPattern{kind: patternPrefix, name: strings.TrimSuffix(trimmed, "*")})
			continue
		}
		out = append(out, tagPattern{kind: patternExact, name: trimmed})
	}
	return out
}

func matchesAny(patterns []tagPattern, tags []string) bool {
	for _, pattern := range patterns {
		for _, tag := range tags {
			switch pattern.kind {
			case patternWildcard:
				return true
			case patternPrefix:
				if strings.HasPrefix(tag, pattern.name) {
					return true
				}
			case patternExact:
				if tag == pattern.name {
					return true
				}
			}
		}
	}
	return false
}
