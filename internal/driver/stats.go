package driver

import "fmt"

// Stats aggregates token counts across a run's FileResults, written to the
// side channel (stderr) after the data sink is flushed (spec.md §4.C9).
type Stats struct {
	OriginalTokens    int
	TransformedTokens int
	FileCount         int
}

// Aggregate sums token counts across results, skipping any that errored.
func Aggregate(results []FileResult) Stats {
	var s Stats
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		s.OriginalTokens += r.Result.OriginalTokens
		s.TransformedTokens += r.Result.TransformedTokens
		s.FileCount++
	}
	return s
}

// String renders the aggregate line: "[skim] <O> tokens → <T> tokens (<R>%
// reduction) [across <N> file(s)]" per the supplemented --show-stats
// feature.
func (s Stats) String() string {
	reduction := 0.0
	if s.OriginalTokens > 0 {
		reduction = 100 * float64(s.OriginalTokens-s.TransformedTokens) / float64(s.OriginalTokens)
	}
	return fmt.Sprintf("[skim] %d tokens → %d tokens (%.1f%% reduction) [across %d file(s)]",
		s.OriginalTokens, s.TransformedTokens, reduction, s.FileCount)
}
