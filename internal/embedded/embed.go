package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed profiles/*.hdp
var profilesFS embed.FS

const profileExt = ".hdp"

// OpenProfile opens an embedded profile by bare name (no extension)
func OpenProfile(name string) (fs.File, error) {
	return profilesFS.Open("profiles/" + name + profileExt)
}

// ListProfiles returns the bare names of all embedded profiles
func ListProfiles() ([]string, error) {
	entries, err := profilesFS.ReadDir("profiles")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), profileExt))
	}
	sort.Strings(names)
	return names, nil
}

// ExtractProfiles writes the embedded profiles into targetDir. Existing
// files are left alone unless force is set.
func ExtractProfiles(targetDir string, force bool) ([]string, error) {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}

	names, err := ListProfiles()
	if err != nil {
		return nil, err
	}

	var written []string
	for _, name := range names {
		target := filepath.Join(targetDir, name+profileExt)
		if !force {
			if _, err := os.Stat(target); err == nil {
				continue
			}
		}
		data, err := profilesFS.ReadFile("profiles/" + name + profileExt)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}
