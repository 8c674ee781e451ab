// Package safety implements skim's Safety Gate (spec.md §4.C2): the bounds
// checked before and during parsing, plus the path-traversal and UTF-8
// boundary invariants referenced throughout the transformation engine.
package safety

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agentic-research/skim/internal/errutil"
)

// MaxInputBytes is the §4.C2 input-size cap: 50 MiB.
const MaxInputBytes = 50 * 1024 * 1024

// MaxNodes is the §4.C2 total-AST-node cap during parsing.
const MaxNodes = 100_000

// MaxDepth is the §4.C2 recursion-depth cap during parsing.
const MaxDepth = 500

// MaxDeclarations is the §4.C4 per-file ceiling on emitted Signatures/Types
// items.
const MaxDeclarations = 10_000

// MaxMarkdownHeadings is the §4.C4 Markdown-mode heading cap.
const MaxMarkdownHeadings = 10_000

// CheckSize enforces the input-too-large bound.
func CheckSize(path string, source []byte) error {
	if len(source) > MaxInputBytes {
		return errutil.WithPath(errutil.InputTooLarge, path,
			fmt.Errorf("source is %d bytes, exceeds %d byte limit", len(source), MaxInputBytes))
	}
	return nil
}

// CheckUTF8Boundary verifies that offset o lies on a UTF-8 character
// boundary of source. Offset len(source) (one past the end) is always a
// valid boundary.
func CheckUTF8Boundary(path string, source []byte, offset int) error {
	if offset < 0 || offset > len(source) {
		return errutil.WithPath(errutil.UTF8Boundary, path,
			fmt.Errorf("offset %d out of range [0, %d]", offset, len(source)))
	}
	if offset == len(source) || offset == 0 {
		return nil
	}
	// A byte is a continuation byte (not a boundary) iff its top two bits
	// are 10xxxxxx. RuneStart reports the inverse.
	if !utf8.RuneStart(source[offset]) {
		return errutil.WithPath(errutil.UTF8Boundary, path,
			fmt.Errorf("offset %d splits a UTF-8 rune", offset))
	}
	return nil
}

// CheckNodeCount enforces the too-many-nodes bound. Callers increment a
// running counter during traversal and call this once the walk completes,
// or incrementally to fail fast on deeply bloated trees.
func CheckNodeCount(path string, count int) error {
	if count > MaxNodes {
		return errutil.WithPath(errutil.TooManyNodes, path,
			fmt.Errorf("tree has %d nodes, exceeds %d node limit", count, MaxNodes))
	}
	return nil
}

// CheckDepth enforces the max-depth-exceeded bound. depth is the ancestor
// count of the node currently being visited (root is depth 0).
func CheckDepth(path string, depth int) error {
	if depth > MaxDepth {
		return errutil.WithPath(errutil.MaxDepthExceeded, path,
			fmt.Errorf("traversal depth %d exceeds %d limit", depth, MaxDepth))
	}
	return nil
}

// CheckDeclarationCount enforces the too-many-declarations bound for
// Signatures/Types mode.
func CheckDeclarationCount(path string, count int) error {
	if count > MaxDeclarations {
		return errutil.WithPath(errutil.TooManyDeclarations, path,
			fmt.Errorf("%d declarations exceeds %d limit", count, MaxDeclarations))
	}
	return nil
}

// CheckMarkdownHeadingCount enforces the Markdown-mode heading cap.
func CheckMarkdownHeadingCount(path string, count int) error {
	if count > MaxMarkdownHeadings {
		return errutil.WithPath(errutil.TooManyDeclarations, path,
			fmt.Errorf("%d headings exceeds %d limit", count, MaxMarkdownHeadings))
	}
	return nil
}

// CheckPath enforces the path-traversal rule: no component of p may be "..".
// Used both on a glob pattern before it is expanded (via CheckGlobPattern)
// and when a path is composed into a cache key.
func CheckPath(p string) error {
	norm := strings.ReplaceAll(p, "\\", "/")
	for _, part := range strings.Split(norm, "/") {
		if part == ".." {
			return errutil.New(errutil.PathTraversal, "path %q contains a parent-directory component", p)
		}
	}
	return nil
}

// CheckGlobPattern enforces the glob-specific traversal rule of spec.md
// §4.C8: reject absolute patterns and patterns containing "..".
func CheckGlobPattern(pattern string) error {
	if strings.HasPrefix(pattern, "/") {
		return errutil.New(errutil.PathTraversal, "glob pattern %q must not be absolute", pattern)
	}
	return CheckPath(pattern)
}

