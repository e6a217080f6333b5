package vars

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestBuild_INIFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vars.ini", "[section]\nkey1 = value1\nkey2 = value2\n")

	context, err := Build(dir, []string{"vars.ini"}, nil)
	require.NoError(t, err)

	section, ok := context["section"].(map[string]any)
	require.True(t, ok, "section should be a nested map")
	require.Equal(t, "value1", section["key1"])
	require.Equal(t, "value2", section["key2"])
}

func TestBuild_INITopLevelKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vars.ini", "key1 = value1\n\n[section]\nkey2 = value2\n")

	context, err := Build(dir, []string{"vars.ini"}, nil)
	require.NoError(t, err)

	require.Equal(t, "value1", context["key1"])
	section, ok := context["section"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "value2", section["key2"])
}

func TestBuild_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vars.yaml", "key1: value1\nkey2: value2\n")

	context, err := Build(dir, []string{"vars.yaml"}, nil)
	require.NoError(t, err)

	require.Equal(t, "value1", context["key1"])
	require.Equal(t, "value2", context["key2"])
}

func TestBuild_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vars.toml", "key1 = \"value1\"\n")

	context, err := Build(dir, []string{"vars.toml"}, nil)
	require.NoError(t, err)

	require.Equal(t, "value1", context["key1"])
}

func TestBuild_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "first.yaml", "key1: first\nonly_first: kept\n")
	writeFile(t, dir, "second.yaml", "key1: second\n")

	context, err := Build(dir, []string{"first.yaml", "second.yaml"}, nil)
	require.NoError(t, err)

	require.Equal(t, "second", context["key1"])
	require.Equal(t, "kept", context["only_first"])
}

func TestBuild_OverrideWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vars.ini", "[section]\nkey1 = value1\n")

	context, err := Build(dir, []string{"vars.ini"}, []string{"key1=overwritten"})
	require.NoError(t, err)

	require.Equal(t, "overwritten", context["key1"])
	// The nested section is untouched by the top-level override.
	section, ok := context["section"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "value1", section["key1"])
}

func TestBuild_OverrideValueMayContainEquals(t *testing.T) {
	context, err := Build(t.TempDir(), nil, []string{"url=https://example.com/?a=b"})
	require.NoError(t, err)

	require.Equal(t, "https://example.com/?a=b", context["url"])
}

func TestBuild_MalformedOverride(t *testing.T) {
	_, err := Build(t.TempDir(), nil, []string{"missing"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "key=value")
}

func TestBuild_AbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "vars.yaml", "key1: value1\n")

	// An absolute path ignores the base directory entirely.
	context, err := Build(t.TempDir(), []string{path}, nil)
	require.NoError(t, err)
	require.Equal(t, "value1", context["key1"])
}

func TestBuild_MissingFile(t *testing.T) {
	_, err := Build(t.TempDir(), []string{"nope.yaml"}, nil)
	require.Error(t, err)
}

func TestBuild_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vars.yaml", "key1: [unclosed\n")

	_, err := Build(dir, []string{"vars.yaml"}, nil)
	require.Error(t, err)
}
