// Package tokencount wraps skim's Token Counter (spec.md §4.C6): an
// external fixed-BPE encoder used purely for before/after token accounting,
// never for the transformation itself. Bound to
// github.com/pkoukk/tiktoken-go, grounded on the same token-accounting use
// in the retrieval pack's own LLM-context tooling (e.g. iota-uz/cc-token,
// Tgenz1213/ArchGuard).
package tokencount

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// encoding is the fixed BPE encoding used across the whole run (spec.md
// §1, "a fixed BPE encoding"). cl100k_base is the encoding shared by the
// GPT-3.5/4-class models this tool's LLM consumers target.
const encoding = "cl100k_base"

var (
	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
)

// encoder lazily builds the shared encoder exactly once (spec.md §3
// Lifecycle: "the token counter, process-lifetime, lazily initialized")
// and hands back the same *tiktoken.Tiktoken to every subsequent caller —
// it is read-only after construction and safe to share across worker
// goroutines (spec.md §5).
func encoder() (*tiktoken.Tiktoken, error) {
	once.Do(func() {
		enc, err = tiktoken.GetEncoding(encoding)
	})
	return enc, err
}

// Count returns the number of BPE tokens in text. If the encoder fails to
// initialize (e.g. no network access to fetch the BPE rank file on first
// use), Count degrades to 0 rather than failing the caller's transform —
// token counts are optional statistics, never load-bearing for output
// correctness (spec.md §3: "Token counts may be 0 when stats are not
// requested").
func Count(text []byte) int {
	e, initErr := encoder()
	if initErr != nil {
		return 0
	}
	return len(e.Encode(string(text), nil, nil))
}
