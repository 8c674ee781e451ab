package transform

import (
	"testing"

	"github.com/agentic-research/skim/internal/registry"
	"github.com/stretchr/testify/assert"
)

// TestTableForCoversAllCodeLanguages enumerates the closed node-type table
// set (spec.md §9: "a test can enumerate the table") and checks every code
// language has non-empty kind sets wired in.
func TestTableForCoversAllCodeLanguages(t *testing.T) {
	langs := []registry.Language{
		registry.TypeScript,
		registry.JavaScript,
		registry.Python,
		registry.Rust,
		registry.Go,
		registry.Java,
	}
	for _, lang := range langs {
		table, ok := TableFor(lang)
		assert.True(t, ok, "expected a table for %s", lang)
		assert.NotEmpty(t, table.BodyBearingKinds, "%s: BodyBearingKinds", lang)
		assert.NotEmpty(t, table.SignatureKinds, "%s: SignatureKinds", lang)
		assert.NotEmpty(t, table.TypeKinds, "%s: TypeKinds", lang)
	}
}

func TestTableForMarkdownHasNoTable(t *testing.T) {
	_, ok := TableFor(registry.Markdown)
	assert.False(t, ok)
}

// Every body-bearing kind must also be a signature kind: a declaration
// whose body gets elided in Structure mode must be renderable
// whole-minus-body in Signatures mode.
func TestBodyBearingKindsAreSignatureKinds(t *testing.T) {
	langs := []registry.Language{
		registry.TypeScript,
		registry.JavaScript,
		registry.Python,
		registry.Rust,
		registry.Go,
		registry.Java,
	}
	for _, lang := range langs {
		table, _ := TableFor(lang)
		for kind := range table.BodyBearingKinds {
			assert.True(t, table.SignatureKinds[kind], "%s: %q missing from SignatureKinds", lang, kind)
		}
	}
}
