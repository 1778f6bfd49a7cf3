package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manager locates and loads the uvws configuration for a starting directory.
type Manager struct {
	startDir string
}

// NewManager creates a Manager that searches from startDir upward.
func NewManager(startDir string) *Manager {
	return &Manager{startDir: startDir}
}

// Locate returns the path of the nearest uvws.yaml at or above the starting
// directory, or "" when none exists.
func (m *Manager) Locate() string {
	dir, err := filepath.Abs(m.startDir)
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load returns the effective configuration. A missing configuration file is
// not an error: defaults are returned. An existing file that fails schema
// validation is an error, so typos surface instead of silently resolving the
// wrong workspace.
func (m *Manager) Load() (*Config, error) {
	path := m.Locate()
	if path == "" {
		return DefaultConfig(), nil
	}

	cfg, err := LoadWithValidation(path)
	if err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
