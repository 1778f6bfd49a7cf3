package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindRoot(t *testing.T) {
	tmp := t.TempDir()

	config := "[project]\nname = \"w\"\n\n[tool.uv.workspace]\nmembers = [\"packages/*\"]\n"
	writeFile(t, filepath.Join(tmp, "pyproject.toml"), config)

	start := filepath.Join(tmp, "packages", "bar", "src")
	require.NoError(t, os.MkdirAll(start, 0o755))

	r := NewResolver()
	root, err := r.FindRoot(start)
	require.NoError(t, err)
	assert.Equal(t, tmp, root.Path)
	assert.Equal(t, config, root.ConfigText)
}

func TestFindRootChecksStartPathFirst(t *testing.T) {
	tmp := t.TempDir()

	writeFile(t, filepath.Join(tmp, "pyproject.toml"), "[tool.uv.workspace]\nmembers = []\n")
	nested := filepath.Join(tmp, "nested")
	writeFile(t, filepath.Join(nested, "pyproject.toml"), "[tool.uv.workspace]\n")

	r := NewResolver()
	root, err := r.FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, nested, root.Path)
}

func TestFindRootSkipsUnmarkedConfig(t *testing.T) {
	tmp := t.TempDir()

	// Marked root at the top, a plain member pyproject.toml in between.
	writeFile(t, filepath.Join(tmp, "pyproject.toml"), "[tool.uv.workspace]\nmembers = [\"packages/*\"]\n")
	member := filepath.Join(tmp, "packages", "foo")
	writeFile(t, filepath.Join(member, "pyproject.toml"), "[project]\nname = \"foo\"\n")

	r := NewResolver()
	root, err := r.FindRoot(filepath.Join(member, "src"))
	require.NoError(t, err)
	assert.Equal(t, tmp, root.Path)
}

func TestFindRootContinuesPastReadError(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "pyproject.toml"), "[tool.uv.workspace]\nmembers = [\"packages/*\"]\n")

	// A directory named pyproject.toml makes the read fail in this ancestor;
	// the climb must treat that like a missing file and keep going.
	member := filepath.Join(tmp, "packages", "foo")
	require.NoError(t, os.MkdirAll(filepath.Join(member, "pyproject.toml"), 0o755))

	root, err := NewResolver().FindRoot(filepath.Join(member, "src"))
	require.NoError(t, err)
	assert.Equal(t, tmp, root.Path)
}

func TestFindRootNotFound(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "pyproject.toml"), "[project]\nname = \"standalone\"\n")

	r := NewResolver()
	_, err := r.FindRoot(tmp)
	assert.ErrorIs(t, err, ErrNoWorkspace)
}

func TestFindRootCustomFileAndMarker(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "workspace.toml"), "[workspace]\nmembers = [\"libs/*\"]\n")

	r := NewResolver(WithConfigFile("workspace.toml"), WithMarker("[workspace]"))
	root, err := r.FindRoot(tmp)
	require.NoError(t, err)
	assert.Equal(t, tmp, root.Path)

	// Defaults do not recognize it.
	_, err = NewResolver().FindRoot(tmp)
	assert.ErrorIs(t, err, ErrNoWorkspace)
}
