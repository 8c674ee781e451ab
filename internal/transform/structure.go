package transform

import (
	"github.com/agentic-research/skim/internal/astprovider"
	"github.com/agentic-research/skim/internal/splice"
)

// applyStructure implements the Structure mode traversal of spec.md §4.C4:
// collect a (body.start, body.end, elisionMarker) replacement for every
// body-bearing node's body child, then hand the set to the Splice Writer.
// Nested body-bearing nodes collapse to a single outermost elision because
// the splice merge rule (spec.md §4.C5) drops any replacement contained
// within an already-accepted one — this traversal never tracks "am I
// inside an elided body?" state itself (spec.md §9).
func applyStructure(path string, tree astprovider.Tree, table NodeTypeTable) ([]byte, error) {
	var reps []splice.Replacement
	collectBodyReplacements(tree.Root(), table, &reps)
	return splice.Apply(path, tree.Source(), reps)
}

func collectBodyReplacements(n astprovider.Node, table NodeTypeTable, reps *[]splice.Replacement) {
	if n == nil {
		return
	}
	if table.BodyBearingKinds[n.Kind()] {
		if body := n.FieldChild("body"); body != nil {
			*reps = append(*reps, splice.Replacement{
				Start:   body.Start(),
				End:     body.End(),
				Literal: elisionMarker,
			})
		}
	}
	for i := 0; i < n.NamedChildCount(); i++ {
		collectBodyReplacements(n.NamedChild(i), table, reps)
	}
}
