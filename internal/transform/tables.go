// Package transform implements skim's Transformation Engine (spec.md
// §4.C4): the per-mode AST traversal that produces either an elided copy
// (Structure) or a filtered extract (Signatures, Types) of a source file,
// plus the Markdown-specific heading filter and the Full-mode identity
// pass-through.
package transform

import "github.com/agentic-research/skim/internal/registry"

// NodeTypeTable is the per-language node-kind classification from spec.md
// §3/§4.C4. It is pure data — every traversal in this package dispatches
// off these sets rather than switching on language, so adding an eighth
// language never requires a new branch in structure.go/signatures.go/
// types.go (spec.md §9, "node-type tables are data, not code paths").
type NodeTypeTable struct {
	// BodyBearingKinds are node kinds whose "body" child is elided in
	// Structure mode.
	BodyBearingKinds map[string]bool
	// SignatureKinds are callable declarations emitted whole-minus-body in
	// Signatures mode.
	SignatureKinds map[string]bool
	// TypeKinds are type declarations emitted verbatim in Types mode.
	TypeKinds map[string]bool
}

func set(kinds ...string) map[string]bool {
	m := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

func union(sets ...map[string]bool) map[string]bool {
	m := make(map[string]bool)
	for _, s := range sets {
		for k := range s {
			m[k] = true
		}
	}
	return m
}

var tsJSBodyBearing = set(
	"function_declaration",
	"method_definition",
	"function_expression",
	"arrow_function",
	"generator_function",
	"generator_function_declaration",
	"constructor",
)

var pythonBodyBearing = set(
	"function_definition",
	"async_function_definition",
)

var rustBodyBearing = set(
	"function_item",
)

var goBodyBearing = set(
	"function_declaration",
	"method_declaration",
)

var javaBodyBearing = set(
	"method_declaration",
	"constructor_declaration",
)

// tables is the closed map of per-language node-type tables (spec.md §4.C4).
var tables = map[registry.Language]NodeTypeTable{
	registry.TypeScript: {
		BodyBearingKinds: tsJSBodyBearing,
		SignatureKinds:   union(tsJSBodyBearing, set("method_signature", "function_signature")),
		TypeKinds:        set("interface_declaration", "type_alias_declaration", "enum_declaration", "class_declaration"),
	},
	registry.JavaScript: {
		BodyBearingKinds: tsJSBodyBearing,
		SignatureKinds:   union(tsJSBodyBearing, set("method_signature", "function_signature")),
		TypeKinds:        set("interface_declaration", "type_alias_declaration", "enum_declaration", "class_declaration"),
	},
	registry.Python: {
		BodyBearingKinds: pythonBodyBearing,
		SignatureKinds:   pythonBodyBearing,
		TypeKinds:        set("class_definition"),
	},
	registry.Rust: {
		BodyBearingKinds: rustBodyBearing,
		SignatureKinds:   rustBodyBearing,
		TypeKinds:        set("struct_item", "enum_item", "trait_item", "type_item", "union_item"),
	},
	registry.Go: {
		BodyBearingKinds: goBodyBearing,
		SignatureKinds:   goBodyBearing,
		TypeKinds:        set("type_declaration"),
	},
	registry.Java: {
		BodyBearingKinds: javaBodyBearing,
		SignatureKinds:   javaBodyBearing,
		TypeKinds:        set("class_declaration", "interface_declaration", "enum_declaration", "record_declaration"),
	},
}

// TableFor returns the NodeTypeTable for lang. Markdown has no table — its
// Structure/Signatures/Types handling is heading-level driven, not
// node-kind driven (spec.md §4.C4 "Markdown" row).
func TableFor(lang registry.Language) (NodeTypeTable, bool) {
	t, ok := tables[lang]
	return t, ok
}
