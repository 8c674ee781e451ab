// Package enumerate implements skim's File Enumerator (spec.md §4.C8):
// expansion of a single file, a directory, or a glob pattern into a
// deterministic, lexicographically sorted list of regular files whose
// extension the Language Registry recognizes. The directory walk is
// grounded on EthanGuo-coder-Contextify/main.go's filepath.Walk tree-build
// pass; glob expansion uses github.com/bmatcuk/doublestar/v4, the same
// library that repo uses for ignore/include pattern matching, generalized
// here to doublestar.FilepathGlob's full recursive "**" expansion.
package enumerate

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/agentic-research/skim/internal/registry"
	"github.com/agentic-research/skim/internal/safety"
)

// Mode identifies how the input argument should be interpreted.
type Mode int

const (
	// File is a single path; if it's a regular file with a recognized
	// extension it is the sole result.
	File Mode = iota
	// Dir recursively walks a directory, keeping recognized regular files.
	Dir
	// Glob expands a doublestar pattern, keeping recognized regular files.
	Glob
)

// Enumerate expands input according to mode and returns the matching
// regular files in lexicographic path order. Symbolic links are skipped
// (spec.md §4.C8 "skip symbolic links"); only extensions known to the
// Language Registry are kept.
func Enumerate(mode Mode, input string) ([]string, error) {
	switch mode {
	case File:
		return enumerateFile(input)
	case Dir:
		return enumerateDir(input)
	case Glob:
		return enumerateGlob(input)
	default:
		return nil, nil
	}
}

func enumerateFile(path string) ([]string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if !keepEntry(path, info) {
		return nil, nil
	}
	return []string{path}, nil
}

func enumerateDir(root string) ([]string, error) {
	var out []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			return nil
		}
		if !keepEntry(path, info) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

func enumerateGlob(pattern string) ([]string, error) {
	if err := safety.CheckGlobPattern(pattern); err != nil {
		return nil, err
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, m := range matches {
		info, err := os.Lstat(m)
		if err != nil {
			continue
		}
		if !keepEntry(m, info) {
			continue
		}
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

// keepEntry applies the regular-file, non-symlink, known-extension filter
// common to all three enumeration modes.
func keepEntry(path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink != 0 {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	_, ok := registry.FromExtension(filepath.Ext(path))
	return ok
}
