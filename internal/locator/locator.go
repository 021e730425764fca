// Package locator resolves the scan-root argument of a trace relative to
// the traced class's defining directory.
package locator

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrUnrecognizedPath means the argument is neither a directory, a
	// non-positive level count, nor a glob with a single directory match.
	ErrUnrecognizedPath = errors.New("unrecognized path")

	// ErrAmbiguousPath means a glob argument matched more than one directory.
	ErrAmbiguousPath = errors.New("ambiguous path")
)

// Resolve turns a trace's path argument into the directory the hierarchy
// walk starts from. classDir is the directory holding the traced class's
// definition and is the default when the argument is empty.
//
// An integer argument is a level count: 0 means classDir itself and a
// negative value -k walks k directory levels up from classDir. Positive
// values are rejected. Any other argument must name an existing directory,
// or be a glob pattern matching exactly one directory under classDir.
func Resolve(classDir, arg string) (string, error) {
	if arg == "" {
		return classDir, nil
	}

	if k, err := strconv.Atoi(arg); err == nil {
		if k > 0 {
			return "", ErrUnrecognizedPath
		}
		dir := classDir
		for range -k {
			dir = filepath.Dir(dir)
		}
		return dir, nil
	}

	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return arg, nil
	}

	if containsGlobChars(arg) {
		return resolveGlob(classDir, arg)
	}

	return "", ErrUnrecognizedPath
}

func containsGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// resolveGlob matches a pattern against directories under base and requires
// exactly one hit.
func resolveGlob(base, pattern string) (string, error) {
	matches, err := doublestar.Glob(os.DirFS(base), pattern)
	if err != nil {
		return "", ErrUnrecognizedPath
	}

	var dirs []string
	for _, m := range matches {
		full := filepath.Join(base, m)
		if info, err := os.Stat(full); err == nil && info.IsDir() {
			dirs = append(dirs, full)
		}
	}

	switch len(dirs) {
	case 0:
		return "", ErrUnrecognizedPath
	case 1:
		return dirs[0], nil
	default:
		return "", ErrAmbiguousPath
	}
}
