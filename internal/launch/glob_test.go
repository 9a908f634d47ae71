package launch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
}

func TestExpandGlobsMatchesPattern(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "one.jar")
	touch(t, dir, "two.jar")
	touch(t, dir, "notes.txt")

	out, err := ExpandGlobs([]string{filepath.Join(dir, "*.jar")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "one.jar"),
		filepath.Join(dir, "two.jar"),
	}, out)
}

func TestExpandGlobsPreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.jar")
	touch(t, dir, "z.zip")

	out, err := ExpandGlobs([]string{
		filepath.Join(dir, "*.zip"),
		filepath.Join(dir, "*.jar"),
		filepath.Join(dir, "*.jar"), // multiplicity kept, nothing deduped
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "z.zip"),
		filepath.Join(dir, "a.jar"),
		filepath.Join(dir, "a.jar"),
	}, out)
}

// A value without metacharacters expands to itself when it exists.
func TestExpandGlobsPlainPathIdentity(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "app.jar")

	path := filepath.Join(dir, "app.jar")
	out, err := ExpandGlobs([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, out)
}

func TestExpandGlobsMiss(t *testing.T) {
	dir := t.TempDir()

	_, err := ExpandGlobs([]string{filepath.Join(dir, "*.jar")})
	var miss *GlobMissError
	require.True(t, errors.As(err, &miss))
	assert.Contains(t, miss.Pattern, "*.jar")
}

func TestExpandGlobsBadDirectory(t *testing.T) {
	_, err := ExpandGlobs([]string{"/nonexistent-dir-xyz/*.jar"})
	assert.Error(t, err)
	var miss *GlobMissError
	assert.False(t, errors.As(err, &miss))
}

func TestExpandGlobsEmptyInput(t *testing.T) {
	out, err := ExpandGlobs(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
