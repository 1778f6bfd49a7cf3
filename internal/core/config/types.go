// Package config loads the optional uvws tool configuration.
package config

// ConfigFileName is the uvws configuration file, looked up from the starting
// directory upward.
const ConfigFileName = "uvws.yaml"

// Config is the uvws configuration. Every field is optional; absent fields
// fall back to uv defaults.
type Config struct {
	Version   string          `yaml:"version,omitempty"`
	Workspace WorkspaceConfig `yaml:"workspace,omitempty"`
	Settings  SettingsTarget  `yaml:"settings,omitempty"`
}

// WorkspaceConfig controls how workspace roots are recognized.
type WorkspaceConfig struct {
	// File is the configuration file name checked in each ancestor directory.
	File string `yaml:"file,omitempty"`
	// Marker is the section header that marks File as a workspace root.
	Marker string `yaml:"marker,omitempty"`
}

// SettingsTarget describes the downstream settings file that computed extra
// paths are merged into by `uvws sync`.
type SettingsTarget struct {
	// Path is resolved relative to the member root unless absolute.
	Path   string `yaml:"path,omitempty"`
	Format string `yaml:"format,omitempty"`
	// Key is the list-valued setting that receives the paths.
	Key string `yaml:"key,omitempty"`
}

// DefaultConfig returns the configuration used when no uvws.yaml exists:
// uv workspaces feeding pyright's extraPaths.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Workspace: WorkspaceConfig{
			File:   "pyproject.toml",
			Marker: "[tool.uv.workspace]",
		},
		Settings: SettingsTarget{
			Path:   "pyrightconfig.json",
			Format: "json",
			Key:    "extraPaths",
		},
	}
}

// applyDefaults fills unset fields from DefaultConfig.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = def.Version
	}
	if cfg.Workspace.File == "" {
		cfg.Workspace.File = def.Workspace.File
	}
	if cfg.Workspace.Marker == "" {
		cfg.Workspace.Marker = def.Workspace.Marker
	}
	if cfg.Settings.Path == "" {
		cfg.Settings.Path = def.Settings.Path
	}
	if cfg.Settings.Format == "" {
		cfg.Settings.Format = def.Settings.Format
	}
	if cfg.Settings.Key == "" {
		cfg.Settings.Key = def.Settings.Key
	}
}
