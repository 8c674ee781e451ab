// Package astprovider adapts skim's two external AST providers — the
// tree-sitter grammar bindings (spec.md §4.C3) for code languages, and
// goldmark's block-level AST for Markdown — behind the minimal contract the
// Transformation Engine (spec.md §4.C4) needs: node kind, byte span, ordered
// named children, and fetch-by-grammar-role.
package astprovider

// Node is the minimal AST node contract required by the transformation
// engine: a short kind string, a byte range, ordered named children, and a
// named-child lookup for grammar roles such as "body".
type Node interface {
	Kind() string
	Start() int
	End() int
	NamedChildCount() int
	NamedChild(i int) Node
	// FieldChild fetches a child by its grammar role (e.g. "body", "name").
	// Returns nil if the role is absent on this node.
	FieldChild(name string) Node
}

// Tree is a parsed source file: a root Node plus the source bytes it spans.
type Tree interface {
	Root() Node
	Source() []byte
}
