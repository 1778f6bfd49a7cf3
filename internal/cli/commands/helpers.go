package commands

import (
	"path/filepath"

	"github.com/aki/uvws/internal/core/config"
	"github.com/aki/uvws/internal/core/workspace"
)

// memberDir resolves the optional [dir] argument, defaulting to the current
// directory, and returns it as an absolute path.
func memberDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	// A nonexistent directory is not rejected here; resolution degrades to
	// empty results downstream.
	return filepath.Abs(dir)
}

// setup loads the effective configuration for dir and builds a resolver
// from it.
func setup(dir string) (*config.Config, *workspace.Resolver, error) {
	cfg, err := config.NewManager(dir).Load()
	if err != nil {
		return nil, nil, err
	}
	resolver := workspace.NewResolver(
		workspace.WithConfigFile(cfg.Workspace.File),
		workspace.WithMarker(cfg.Workspace.Marker),
		workspace.WithLogger(log),
	)
	return cfg, resolver, nil
}

// settingsTarget resolves the configured settings path against the member
// directory.
func settingsTarget(cfg *config.Config, dir string) string {
	if filepath.IsAbs(cfg.Settings.Path) {
		return cfg.Settings.Path
	}
	return filepath.Join(dir, cfg.Settings.Path)
}
