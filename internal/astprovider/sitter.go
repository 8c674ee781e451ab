package astprovider

import (
	"context"
	"sync"

	"github.com/agentic-research/skim/internal/registry"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// grammarCache holds the process-lifetime, lazily-initialized grammar
// handles (spec.md §3 "Lifecycle"), keyed by language (+ ":tsx" for the JSX
// grammar variant). Grammar handles are immutable once built and safe to
// share by reference across worker goroutines (spec.md §5), mirroring the
// teacher's tmplCache sync.Map lazy-shared-cache pattern in
// internal/ingest/engine.go.
var grammarCache sync.Map // string -> *sitter.Language

func grammarKey(lang registry.Language, isTSX bool) string {
	if isTSX {
		return string(lang) + ":tsx"
	}
	return string(lang)
}

// GrammarFor returns the tree-sitter grammar handle for lang, building it on
// first use and reusing it thereafter. For TypeScript, isTSX selects the
// JSX-flavored TSX grammar; every other language has a single grammar and
// ignores isTSX.
func GrammarFor(lang registry.Language, isTSX bool) *sitter.Language {
	key := grammarKey(lang, isTSX)
	if cached, ok := grammarCache.Load(key); ok {
		return cached.(*sitter.Language)
	}
	var g *sitter.Language
	switch lang {
	case registry.Go:
		g = golang.GetLanguage()
	case registry.Python:
		g = python.GetLanguage()
	case registry.JavaScript:
		g = javascript.GetLanguage()
	case registry.TypeScript:
		if isTSX {
			g = tsx.GetLanguage()
		} else {
			g = typescript.GetLanguage()
		}
	case registry.Rust:
		g = rust.GetLanguage()
	case registry.Java:
		g = java.GetLanguage()
	default:
		return nil
	}
	actual, _ := grammarCache.LoadOrStore(key, g)
	return actual.(*sitter.Language)
}

// ParseSitter parses source with the given grammar. Malformed input still
// yields a best-effort tree with ERROR nodes rather than a hard failure
// (spec.md §4.C3(d)); the returned error is non-nil only on context
// cancellation, matching the teacher's ParseCtx usage in
// internal/ingest/engine.go.
func ParseSitter(ctx context.Context, lang *sitter.Language, source []byte) (Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, err
	}
	return &sitterTree{tree: tree, source: source}, nil
}

type sitterTree struct {
	tree   *sitter.Tree
	source []byte
}

func (t *sitterTree) Root() Node     { return wrapSitterNode(t.tree.RootNode()) }
func (t *sitterTree) Source() []byte { return t.source }

// sitterNode adapts *sitter.Node to the astprovider.Node contract.
type sitterNode struct {
	n *sitter.Node
}

func wrapSitterNode(n *sitter.Node) Node {
	if n == nil {
		return nil
	}
	return &sitterNode{n: n}
}

func (s *sitterNode) Kind() string   { return s.n.Type() }
func (s *sitterNode) Start() int     { return int(s.n.StartByte()) }
func (s *sitterNode) End() int       { return int(s.n.EndByte()) }
func (s *sitterNode) NamedChildCount() int {
	return int(s.n.NamedChildCount())
}
func (s *sitterNode) NamedChild(i int) Node {
	return wrapSitterNode(s.n.NamedChild(i))
}
func (s *sitterNode) FieldChild(name string) Node {
	return wrapSitterNode(s.n.ChildByFieldName(name))
}
