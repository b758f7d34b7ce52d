package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ManifestName is the file that marks a project root.
const ManifestName = "lumen.toml"

// FindManifest looks for lumen.toml in startDir and then in each parent.
// ok is false when the filesystem root is reached without a match.
func FindManifest(startDir string) (path string, ok bool, err error) {
	dir, err := filepath.Abs(cmpOr(startDir, "."))
	if err != nil {
		return "", false, fmt.Errorf("resolve %q: %w", startDir, err)
	}
	for prev := ""; dir != prev; prev, dir = dir, filepath.Dir(dir) {
		path = filepath.Join(dir, ManifestName)
		switch _, err := os.Stat(path); {
		case err == nil:
			return path, true, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", false, fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return "", false, nil
}

func cmpOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
