package launch

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExpandGlobs expands each value as a filesystem glob over the basename
// within its directory prefix. Input order and multiplicity are
// preserved; a value matching nothing is an error.
func ExpandGlobs(values []string) ([]string, error) {
	out := make([]string, 0, len(values))

	for _, val := range values {
		dir, pattern := filepath.Split(val)
		searchDir := dir
		if searchDir == "" {
			searchDir = "."
		}

		entries, err := os.ReadDir(searchDir)
		if err != nil {
			return nil, fmt.Errorf("classpath entry %s: %w", val, err)
		}

		matched := false
		for _, e := range entries {
			ok, err := filepath.Match(pattern, e.Name())
			if err != nil {
				return nil, fmt.Errorf("classpath pattern %s: %w", val, err)
			}
			if ok {
				out = append(out, dir+e.Name())
				matched = true
			}
		}
		if !matched {
			return nil, &GlobMissError{Pattern: val}
		}
	}
	return out, nil
}
