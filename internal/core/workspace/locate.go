package workspace

import (
	"os"
	"path/filepath"
	"strings"
)

// FindRoot walks the ancestor chain of startPath, nearest first, looking for
// a configuration file that contains the workspace marker. The walk is an
// explicit loop bounded by the filesystem root. A configuration file without
// the marker does not stop the search; read failures (permissions, file
// vanished) are treated the same as a missing file so the climb continues.
func (r *Resolver) FindRoot(startPath string) (*Root, error) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return nil, ErrNoWorkspace
	}

	dir := filepath.Clean(abs)
	for {
		text, err := os.ReadFile(filepath.Join(dir, r.configFile))
		if err == nil && strings.Contains(string(text), r.marker) {
			return &Root{Path: dir, ConfigText: string(text)}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNoWorkspace
		}
		dir = parent
	}
}
