// Package splice implements skim's Splice Writer (spec.md §4.C5): applying
// a set of non-overlapping byte-range replacements to source text in a
// single forward pass. Rendering by splicing over the original bytes —
// rather than pretty-printing from the AST — is what preserves whitespace,
// comments, and formatting verbatim (spec.md §9, "Splice vs. rebuild").
package splice

import (
	"fmt"
	"sort"

	"github.com/agentic-research/skim/internal/errutil"
	"github.com/agentic-research/skim/internal/safety"
)

// Replacement is the (start, end, literal) triple from spec.md §3. The
// invariant start <= end <= len(source) is the caller's responsibility;
// Apply additionally verifies both offsets land on UTF-8 boundaries.
type Replacement struct {
	Start   int
	End     int
	Literal string
}

// Apply sorts, merges, and splices replacements over source in one forward
// pass, per the algorithm in spec.md §4.C5:
//
//  1. Sort by Start ascending, End descending (outer-first for same start).
//  2. Merge: an already-accepted replacement R1 absorbs any R2 with
//     R2.Start < R1.End — this is how nested-body elision collapses to a
//     single outermost marker without the traversal needing to track
//     "am I inside an elided body?" state (spec.md §9).
//  3. Validate every surviving boundary is a UTF-8 character boundary.
//  4. Copy-write in a single forward pass.
func Apply(path string, source []byte, replacements []Replacement) ([]byte, error) {
	merged := merge(replacements)

	for _, r := range merged {
		if err := safety.CheckUTF8Boundary(path, source, r.Start); err != nil {
			return nil, err
		}
		if err := safety.CheckUTF8Boundary(path, source, r.End); err != nil {
			return nil, err
		}
		if r.Start > r.End || r.End > len(source) {
			return nil, errutil.WithPath(errutil.IOError, path,
				fmt.Errorf("invalid replacement range [%d, %d) for %d-byte source", r.Start, r.End, len(source)))
		}
	}

	out := make([]byte, 0, len(source))
	cursor := 0
	for _, r := range merged {
		out = append(out, source[cursor:r.Start]...)
		out = append(out, r.Literal...)
		cursor = r.End
	}
	out = append(out, source[cursor:]...)
	return out, nil
}

// merge sorts replacements (start asc, end desc) and drops any replacement
// fully contained within — or overlapping the tail of — an already-accepted
// one, so the surviving set is pairwise non-overlapping (spec.md §8,
// invariant 2).
func merge(replacements []Replacement) []Replacement {
	if len(replacements) == 0 {
		return nil
	}
	sorted := make([]Replacement, len(replacements))
	copy(sorted, replacements)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	result := make([]Replacement, 0, len(sorted))
	for _, r := range sorted {
		if len(result) > 0 && r.Start < result[len(result)-1].End {
			continue // contained or overlapping nested: enclosing wins
		}
		result = append(result, r)
	}
	return result
}
