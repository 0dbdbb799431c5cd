package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps files whose base name matches pattern.
// Supports globs like "parser_*_test.go", loose wildcards like "*store*" and
// plain substrings.
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string
	for _, file := range files {
		if matchName(filepath.Base(file), pattern) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to requiring every literal part in order, so "*User*Test*"
	// matches names filepath.Match rejects.
	rest := name
	nonEmpty := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") {
			return false
		}
		nonEmpty = true
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return nonEmpty
}
