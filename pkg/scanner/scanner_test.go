package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineagehq/lineage/pkg/config"
)

func mkFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("class A:\n    pass\n"), 0o644))
}

func TestScanDirFindsSourceFiles(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, filepath.Join(dir, "a.py"))
	mkFile(t, filepath.Join(dir, "sub", "b.rb"))
	mkFile(t, filepath.Join(dir, "notes.txt"))

	s := New(nil)
	files, err := s.ScanDir(dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.py"),
		filepath.Join(dir, "sub", "b.rb"),
	}, files)
}

func TestScanDirSkipsExcludedDirs(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, filepath.Join(dir, "a.py"))
	mkFile(t, filepath.Join(dir, "node_modules", "dep.py"))
	mkFile(t, filepath.Join(dir, "vendor", "v.rb"))

	s := New(nil)
	files, err := s.ScanDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a.py")}, files)
}

func TestScanDirHonorsConfigPatterns(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, filepath.Join(dir, "a.py"))
	mkFile(t, filepath.Join(dir, "a_test.py"))

	cfg := config.DefaultConfig()
	cfg.Exclude.Patterns = []string{"*_test.py"}
	cfg.Exclude.Gitignore = false

	s := New(cfg)
	files, err := s.ScanDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a.py")}, files)
}

func TestScanDirHonorsGitignore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("generated/\n"), 0o644))
	mkFile(t, filepath.Join(dir, "a.py"))
	mkFile(t, filepath.Join(dir, "generated", "gen.py"))

	s := New(nil)
	files, err := s.ScanDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "a.py")}, files)
}

func TestListEntriesSingleLevel(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, filepath.Join(dir, "b.py"))
	mkFile(t, filepath.Join(dir, "a.py"))
	mkFile(t, filepath.Join(dir, "notes.txt"))
	mkFile(t, filepath.Join(dir, "sub", "c.rb"))
	mkFile(t, filepath.Join(dir, "node_modules", "dep.py"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".hidden"), 0o755))

	s := New(nil)
	files, subdirs, err := s.ListEntries(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.py"),
		filepath.Join(dir, "b.py"),
	}, files)
	assert.Equal(t, []string{filepath.Join(dir, "sub")}, subdirs)
}

func TestListEntriesMissingDir(t *testing.T) {
	s := New(nil)
	_, _, err := s.ListEntries(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFilterBySize(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.py")
	big := filepath.Join(dir, "big.py")
	require.NoError(t, os.WriteFile(small, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(big, make([]byte, 100), 0o644))

	filtered, skipped := FilterBySize([]string{small, big}, 10)
	assert.Equal(t, []string{small}, filtered)
	assert.Equal(t, 1, skipped)

	filtered, skipped = FilterBySize([]string{small, big}, 0)
	assert.Len(t, filtered, 2)
	assert.Equal(t, 0, skipped)
}
