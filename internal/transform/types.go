package transform

import (
	"bytes"

	"github.com/agentic-research/skim/internal/astprovider"
	"github.com/agentic-research/skim/internal/safety"
)

// renderTypes implements Types mode (spec.md §4.C4): for each type_kinds
// node, emit [node.start, node.end) verbatim, separated by a blank line.
// Class/trait/interface shells are emitted with their member declarations
// exactly as they appear in source — method bodies within those shells are
// not elided (this spec's resolution of the Open Question in spec.md §9).
// Traversal does not descend into an already-matched node's children: its
// whole byte range is already emitted, so recursing further would
// duplicate any type declaration nested inside it.
func renderTypes(path string, tree astprovider.Tree, table NodeTypeTable) ([]byte, error) {
	var buf bytes.Buffer
	count := 0
	src := tree.Source()
	first := true

	var walk func(n astprovider.Node) error
	walk = func(n astprovider.Node) error {
		if n == nil {
			return nil
		}
		if table.TypeKinds[n.Kind()] {
			count++
			if err := safety.CheckDeclarationCount(path, count); err != nil {
				return err
			}
			if !first {
				buf.WriteString("\n\n")
			}
			first = false
			buf.Write(src[n.Start():n.End()])
			return nil
		}
		for i := 0; i < n.NamedChildCount(); i++ {
			if err := walk(n.NamedChild(i)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(tree.Root()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
