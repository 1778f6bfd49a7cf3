package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateYAML(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "full valid config",
			yaml: `
version: "1.0"
workspace:
  file: pyproject.toml
  marker: "[tool.uv.workspace]"
settings:
  path: pyrightconfig.json
  format: json
  key: extraPaths
`,
		},
		{
			name: "empty file",
			yaml: "",
		},
		{
			name: "yaml settings format",
			yaml: `
settings:
  format: yaml
`,
		},
		{
			name: "unknown top-level key",
			yaml: `
workspaces:
  file: pyproject.toml
`,
			wantErr: true,
		},
		{
			name: "unsupported format value",
			yaml: `
settings:
  format: ini
`,
			wantErr: true,
		},
		{
			name: "empty marker",
			yaml: `
workspace:
  marker: ""
`,
			wantErr: true,
		},
		{
			name:    "not yaml at all",
			yaml:    "{{{",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateYAML([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
