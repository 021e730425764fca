package locator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEmptyDefaultsToClassDir(t *testing.T) {
	dir := t.TempDir()

	got, err := Resolve(dir, "")
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestResolveLevelCounts(t *testing.T) {
	root := t.TempDir()
	classDir := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(classDir, 0o755))

	got, err := Resolve(classDir, "0")
	require.NoError(t, err)
	assert.Equal(t, classDir, got)

	got, err = Resolve(classDir, "-1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a"), got)

	got, err = Resolve(classDir, "-2")
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestResolvePositiveLevelRejected(t *testing.T) {
	_, err := Resolve(t.TempDir(), "2")
	assert.True(t, errors.Is(err, ErrUnrecognizedPath))
}

func TestResolveExistingDirectory(t *testing.T) {
	classDir := t.TempDir()
	other := t.TempDir()

	got, err := Resolve(classDir, other)
	require.NoError(t, err)
	assert.Equal(t, other, got)
}

func TestResolveUnknownArgument(t *testing.T) {
	_, err := Resolve(t.TempDir(), "definitely/not/here")
	assert.True(t, errors.Is(err, ErrUnrecognizedPath))
}

func TestResolveGlob(t *testing.T) {
	classDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(classDir, "handlers"), 0o755))

	got, err := Resolve(classDir, "hand*")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(classDir, "handlers"), got)
}

func TestResolveGlobAmbiguous(t *testing.T) {
	classDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(classDir, "mod_a"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(classDir, "mod_b"), 0o755))

	_, err := Resolve(classDir, "mod_*")
	assert.True(t, errors.Is(err, ErrAmbiguousPath))
}

func TestResolveGlobNoMatch(t *testing.T) {
	_, err := Resolve(t.TempDir(), "zz*")
	assert.True(t, errors.Is(err, ErrUnrecognizedPath))
}
