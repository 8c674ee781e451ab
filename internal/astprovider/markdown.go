package astprovider

import (
	"github.com/agentic-research/skim/internal/safety"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// mdParser is built once and reused across calls — goldmark's parser.Parser
// is safe for concurrent use once constructed, the same "parse once, share
// read-only" discipline skim applies to its tree-sitter grammar handles.
var mdParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

// Heading is a single heading extracted from a Markdown document: its level
// (1-6) and the byte span of the full source line its text appears on,
// including any ATX "#" markers — i.e. a verbatim substring of the original
// source, not a rendering of it. For a Setext heading the span covers the
// text line only; the "===" / "---" underline line is not included.
type Heading struct {
	Level int
	Start int
	End   int
}

// MarkdownTree is the result of parsing a Markdown document: every heading
// in source order, plus the source bytes they were extracted from.
type MarkdownTree struct {
	Source   []byte
	Headings []Heading
}

// ParseMarkdown walks goldmark's block AST, collecting headings in source
// order and enforcing the §4.C4 Markdown caps (heading count, traversal
// depth) during the single walk. Setext-style headings are distinguished
// from ATX the same way goldmark's own parser distinguishes them — by
// emitting a *gast.Heading node with the resolved Level already set — never
// by re-inspecting the rendered text for "===" / "---" underlines.
func ParseMarkdown(path string, source []byte) (*MarkdownTree, error) {
	doc := mdParser.Parse(text.NewReader(source))

	mt := &MarkdownTree{Source: source}
	if err := walkMarkdown(path, doc, 0, source, mt); err != nil {
		return nil, err
	}
	return mt, nil
}

func walkMarkdown(path string, n gast.Node, depth int, source []byte, mt *MarkdownTree) error {
	if err := safety.CheckDepth(path, depth); err != nil {
		return err
	}
	if h, ok := n.(*gast.Heading); ok {
		if start, end, ok := headingLineSpan(h, source); ok {
			mt.Headings = append(mt.Headings, Heading{Level: h.Level, Start: start, End: end})
			if err := safety.CheckMarkdownHeadingCount(path, len(mt.Headings)); err != nil {
				return err
			}
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := walkMarkdown(path, c, depth+1, source, mt); err != nil {
			return err
		}
	}
	return nil
}

// headingLineSpan expands a heading node's inline-content segment (which
// goldmark trims to exclude ATX "#" markers and Setext underlines) back out
// to the full source line it sits on, so the emitted text is a genuine
// substring of the original file rather than a re-synthesis of it.
func headingLineSpan(h *gast.Heading, source []byte) (start, end int, ok bool) {
	lines := h.Lines()
	if lines.Len() == 0 {
		return 0, 0, false
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)

	start = first.Start
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	end = last.Stop
	for end < len(source) && source[end] != '\n' {
		end++
	}
	return start, end, true
}
