package parser

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandGlobs expands command file paths and glob patterns into a sorted,
// deduplicated list. Patterns without matches are kept as literal paths so
// that opening them later reports a useful error. The stdin marker "-" is
// passed through and always comes first.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	stdin := false

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}

	for _, pattern := range patterns {
		if pattern == StdinName {
			stdin = true
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, match := range matches {
			add(match)
		}
	}

	sort.Strings(result)
	if stdin {
		result = append([]string{StdinName}, result...)
	}
	return result, nil
}
