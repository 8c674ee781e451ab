package astprovider

import (
	"context"
	"testing"

	"github.com/agentic-research/skim/internal/registry"
	"github.com/stretchr/testify/require"
)

func TestParseSitterGo(t *testing.T) {
	src := []byte("package main\n\nfunc add(a, b int) int {\n\treturn a + b\n}\n")
	lang := GrammarFor(registry.Go, false)
	require.NotNil(t, lang)

	tree, err := ParseSitter(context.Background(), lang, src)
	require.NoError(t, err)
	require.NotNil(t, tree.Root())
	require.Equal(t, src, tree.Source())

	// source_file -> function_declaration should be reachable as a named child.
	var found bool
	var walk func(n Node)
	walk = func(n Node) {
		if n == nil {
			return
		}
		if n.Kind() == "function_declaration" {
			found = true
			body := n.FieldChild("body")
			require.NotNil(t, body)
			require.Equal(t, "block", body.Kind())
		}
		for i := 0; i < n.NamedChildCount(); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(tree.Root())
	require.True(t, found, "expected to find a function_declaration node")
}

func TestGrammarForCachesHandle(t *testing.T) {
	a := GrammarFor(registry.Python, false)
	b := GrammarFor(registry.Python, false)
	require.Same(t, a, b)
}

func TestGrammarForUnknownLanguage(t *testing.T) {
	require.Nil(t, GrammarFor(registry.Markdown, false))
}
