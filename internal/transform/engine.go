package transform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/agentic-research/skim/internal/astprovider"
	"github.com/agentic-research/skim/internal/errutil"
	"github.com/agentic-research/skim/internal/registry"
	"github.com/agentic-research/skim/internal/safety"
	"github.com/agentic-research/skim/internal/tokencount"
)

// Mode is the closed enum from spec.md §3. Full means identity.
type Mode string

const (
	Structure  Mode = "structure"
	Signatures Mode = "signatures"
	Types      Mode = "types"
	Full       Mode = "full"
)

// elisionMarker is the literal that replaces an elided body (spec.md
// GLOSSARY, "Elision marker").
const elisionMarker = "{ /* ... */ }"

// Result is spec.md §3's TransformResult.
type Result struct {
	Output            []byte
	OriginalTokens    int
	TransformedTokens int
}

// Options controls optional, non-semantic behavior of Transform.
type Options struct {
	// ComputeStats requests before/after token counts via the Token
	// Counter (spec.md §4.C6). When false both counts stay 0.
	ComputeStats bool
	// IsTSX selects the JSX grammar variant for TypeScript sources.
	IsTSX bool
}

// Transform is the embedding-contract library function from spec.md §6:
// a pure function, no I/O, no caching.
func Transform(path string, source []byte, lang registry.Language, mode Mode, opts Options) (Result, error) {
	if err := safety.CheckSize(path, source); err != nil {
		return Result{}, err
	}

	if mode == Full {
		return finish(source, append([]byte(nil), source...), opts), nil
	}

	var out []byte
	var err error
	if lang == registry.Markdown {
		out, err = transformMarkdown(path, source, mode)
	} else {
		out, err = transformCode(path, source, lang, mode, opts.IsTSX)
	}
	if err != nil {
		return Result{}, err
	}
	return finish(source, out, opts), nil
}

// TransformAuto derives the language from pathHint's extension (falling
// back to explicitTag) and feeds it to Transform, per spec.md §6.
func TransformAuto(pathHint string, source []byte, mode Mode, explicitTag string, opts Options) (Result, error) {
	ext := filepath.Ext(pathHint)
	lang, err := registry.Resolve(pathHint, ext, explicitTag)
	if err != nil {
		return Result{}, err
	}
	opts.IsTSX = registry.IsTSX(ext)
	return Transform(pathHint, source, lang, mode, opts)
}

func transformCode(path string, source []byte, lang registry.Language, mode Mode, isTSX bool) ([]byte, error) {
	table, ok := TableFor(lang)
	if !ok {
		return nil, errutil.WithPath(errutil.UnsupportedLanguage, path, fmt.Errorf("no node-type table for language %q", lang))
	}

	grammar := astprovider.GrammarFor(lang, isTSX)
	if grammar == nil {
		return nil, errutil.WithPath(errutil.UnsupportedLanguage, path, fmt.Errorf("no grammar bound for language %q", lang))
	}

	tree, err := astprovider.ParseSitter(context.Background(), grammar, source)
	if err != nil {
		return nil, errutil.WithPath(errutil.ParseError, path, err)
	}
	if err := astprovider.Validate(path, tree.Root()); err != nil {
		return nil, err
	}

	switch mode {
	case Structure:
		return applyStructure(path, tree, table)
	case Signatures:
		return renderSignatures(path, tree, table)
	case Types:
		return renderTypes(path, tree, table)
	default:
		return nil, errutil.New(errutil.IOError, "unknown mode %q", mode)
	}
}

func finish(original, output []byte, opts Options) Result {
	res := Result{Output: output}
	if opts.ComputeStats {
		res.OriginalTokens = tokencount.Count(original)
		res.TransformedTokens = tokencount.Count(output)
	}
	return res
}
