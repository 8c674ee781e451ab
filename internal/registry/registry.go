// Package registry implements skim's Language Registry (spec.md §4.C1):
// mapping file extensions and explicit language tags to a closed Language
// enum. It owns no grammar handles itself — those live in astprovider,
// which is keyed off the Language values defined here.
package registry

import (
	"fmt"
	"strings"

	"github.com/agentic-research/skim/internal/errutil"
)

// Language is the closed enum from spec.md §3.
type Language string

const (
	TypeScript Language = "typescript"
	JavaScript Language = "javascript"
	Python     Language = "python"
	Rust       Language = "rust"
	Go         Language = "go"
	Java       Language = "java"
	Markdown   Language = "markdown"
)

// extensionTable is the canonical extension -> Language mapping from
// spec.md §4.C1. Kept as data so adding a language never requires a new
// branch anywhere else (spec.md §9, "node-type tables are data").
var extensionTable = map[string]Language{
	"ts":       TypeScript,
	"tsx":      TypeScript,
	"js":       JavaScript,
	"jsx":      JavaScript,
	"mjs":      JavaScript,
	"cjs":      JavaScript,
	"py":       Python,
	"pyi":      Python,
	"rs":       Rust,
	"go":       Go,
	"java":     Java,
	"md":       Markdown,
	"markdown": Markdown,
}

// tsxExtensions tracks which extensions need the JSX-flavored grammar
// variant at the astprovider layer (TypeScript's .tsx vs plain .ts).
var tsxExtensions = map[string]bool{"tsx": true, "jsx": true}

// IsTSX reports whether ext (without leading dot, any case) should use the
// JSX grammar variant for its language.
func IsTSX(ext string) bool {
	return tsxExtensions[normalizeExt(ext)]
}

func normalizeExt(ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return strings.ToLower(ext)
}

// FromExtension resolves ext (with or without leading dot) to a Language.
func FromExtension(ext string) (Language, bool) {
	lang, ok := extensionTable[normalizeExt(ext)]
	return lang, ok
}

// ParseTag resolves an explicit --language tag string to a Language.
func ParseTag(tag string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "typescript":
		return TypeScript, true
	case "javascript":
		return JavaScript, true
	case "python":
		return Python, true
	case "rust":
		return Rust, true
	case "go":
		return Go, true
	case "java":
		return Java, true
	case "markdown":
		return Markdown, true
	default:
		return "", false
	}
}

// Resolve implements the resolution rule of spec.md §4.C1: detect by
// extension first; if absent/unknown and an explicit tag was supplied, use
// it; otherwise fail with unsupported-language naming the extension.
func Resolve(path string, ext string, explicitTag string) (Language, error) {
	if lang, ok := FromExtension(ext); ok {
		return lang, nil
	}
	if explicitTag != "" {
		if lang, ok := ParseTag(explicitTag); ok {
			return lang, nil
		}
		return "", errutil.WithPath(errutil.UnsupportedLanguage, path,
			fmt.Errorf("unrecognized --language tag %q", explicitTag))
	}
	return "", errutil.WithPath(errutil.UnsupportedLanguage, path,
		fmt.Errorf("unsupported extension %q", ext))
}
