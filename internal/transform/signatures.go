package transform

import (
	"bytes"

	"github.com/agentic-research/skim/internal/astprovider"
	"github.com/agentic-research/skim/internal/safety"
)

// renderSignatures implements Signatures mode (spec.md §4.C4): for each
// signature_kinds node, emit [node.start, body.start) — or the full
// [node.start, node.end) when there is no body, which is how abstract and
// interface method signatures without a body are emitted whole — followed
// by a newline. No other text is emitted.
func renderSignatures(path string, tree astprovider.Tree, table NodeTypeTable) ([]byte, error) {
	var buf bytes.Buffer
	count := 0
	src := tree.Source()

	var walk func(n astprovider.Node) error
	walk = func(n astprovider.Node) error {
		if n == nil {
			return nil
		}
		if table.SignatureKinds[n.Kind()] {
			count++
			if err := safety.CheckDeclarationCount(path, count); err != nil {
				return err
			}
			end := n.End()
			if body := n.FieldChild("body"); body != nil {
				end = body.Start()
			}
			buf.Write(src[n.Start():end])
			buf.WriteByte('\n')
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
