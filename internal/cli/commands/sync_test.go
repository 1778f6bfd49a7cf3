package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWorkspace creates a uv workspace with members foo and bar.
func buildWorkspace(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "pyproject.toml"),
		[]byte("[tool.uv.workspace]\nmembers = [\"packages/*\"]\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "packages", "foo"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(tmp, "packages", "bar"), 0o755))
	return tmp
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	syncDryRun = false // flag values persist across Execute calls
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return rootCmd.ExecuteContext(context.Background())
}

func TestSyncCreatesSettingsFile(t *testing.T) {
	root := buildWorkspace(t)
	member := filepath.Join(root, "packages", "bar")

	require.NoError(t, execute(t, "sync", member))

	data, err := os.ReadFile(filepath.Join(member, "pyrightconfig.json"))
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, []interface{}{"../foo"}, parsed["extraPaths"])
}

func TestSyncIsIdempotent(t *testing.T) {
	root := buildWorkspace(t)
	member := filepath.Join(root, "packages", "bar")

	require.NoError(t, execute(t, "sync", member))
	require.NoError(t, execute(t, "sync", member))

	data, err := os.ReadFile(filepath.Join(member, "pyrightconfig.json"))
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, []interface{}{"../foo"}, parsed["extraPaths"])
}

func TestSyncPreservesExistingEntries(t *testing.T) {
	root := buildWorkspace(t)
	member := filepath.Join(root, "packages", "bar")
	require.NoError(t, os.WriteFile(filepath.Join(member, "pyrightconfig.json"),
		[]byte(`{"extraPaths": ["../hand-added"], "typeCheckingMode": "basic"}`), 0o644))

	require.NoError(t, execute(t, "sync", member))

	data, err := os.ReadFile(filepath.Join(member, "pyrightconfig.json"))
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, []interface{}{"../hand-added", "../foo"}, parsed["extraPaths"])
	assert.Equal(t, "basic", parsed["typeCheckingMode"])
}

func TestSyncDryRunWritesNothing(t *testing.T) {
	root := buildWorkspace(t)
	member := filepath.Join(root, "packages", "bar")

	require.NoError(t, execute(t, "sync", "--dry-run", member))

	_, err := os.Stat(filepath.Join(member, "pyrightconfig.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestSyncOutsideWorkspace(t *testing.T) {
	tmp := t.TempDir()

	require.NoError(t, execute(t, "sync", tmp))

	_, err := os.Stat(filepath.Join(tmp, "pyrightconfig.json"))
	assert.True(t, os.IsNotExist(err))
}
