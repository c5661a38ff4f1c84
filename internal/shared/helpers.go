// Package shared provides common utility functions used across multiple
// packages in the buildgraph codebase.
package shared

import (
	"path"
	"strings"
)

// CleanSpecPath normalizes a declaration path: trims whitespace,
// converts backslashes to forward slashes, collapses repeated
// separators and strips leading "./" and trailing "/". Returns ""
// for paths that normalize to nothing.
func CleanSpecPath(value string) string {
	normalized := strings.TrimSpace(value)
	normalized = strings.ReplaceAll(normalized, "\\", "/")
	if normalized == "" {
		return ""
	}
	cleaned := path.Clean(normalized)
	if cleaned == "." || cleaned == "/" {
		return ""
	}
	return strings.TrimPrefix(cleaned, "./")
}

// HasDotSegment reports whether a cleaned path still escapes its root
// via a ".." segment.
func HasDotSegment(value string) bool {
	for _, segment := range strings.Split(value, "/") {
		if segment == ".." {
			return true
		}
	}
	return false
}
