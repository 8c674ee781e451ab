package transform

import (
	"strings"
	"testing"

	"github.com/agentic-research/skim/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1 from spec.md §8.
func TestStructureTypeScriptFunction(t *testing.T) {
	src := []byte("export function add(a: number, b: number): number { return a + b; }")
	res, err := Transform("add.ts", src, registry.TypeScript, Structure, Options{})
	require.NoError(t, err)
	assert.Equal(t, "export function add(a: number, b: number): number { /* ... */ }", string(res.Output))
}

// S2 from spec.md §8.
func TestStructurePythonFunction(t *testing.T) {
	src := []byte("def f():\n    x = 1\n    return x\n")
	res, err := Transform("f.py", src, registry.Python, Structure, Options{})
	require.NoError(t, err)
	out := string(res.Output)
	assert.True(t, strings.HasPrefix(out, "def f():"))
	assert.Contains(t, out, "{ /* ... */ }")
	assert.NotContains(t, out, "return x")
}

// S3 from spec.md §8: nested functions collapse to the outermost elision.
func TestStructureNestedFunctionsJS(t *testing.T) {
	src := []byte("function outer() { function inner() { return 1; } return inner(); }")
	res, err := Transform("nested.js", src, registry.JavaScript, Structure, Options{})
	require.NoError(t, err)
	assert.Equal(t, "function outer() { /* ... */ }", string(res.Output))
}

// S4 from spec.md §8.
func TestSignaturesRust(t *testing.T) {
	src := []byte("impl UserService {\n    pub async fn create(&self, user: NewUser) -> Result<User> { todo!() }\n}\n")
	res, err := Transform("svc.rs", src, registry.Rust, Signatures, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(res.Output), "pub async fn create(&self, user: NewUser) -> Result<User>")
	assert.NotContains(t, string(res.Output), "todo!()")
}

// S5 from spec.md §8.
func TestTypesTypeScript(t *testing.T) {
	src := []byte(`interface User { id: string; name: string; }
type UserRole = 'admin' | 'user';
class Greeter { greet() { return "hi"; } }
`)
	res, err := Transform("types.ts", src, registry.TypeScript, Types, Options{})
	require.NoError(t, err)
	out := string(res.Output)
	assert.Contains(t, out, "interface User")
	assert.Contains(t, out, "type UserRole")
	assert.Contains(t, out, "class Greeter")
	assert.Contains(t, out, `return "hi";`) // member bodies retained verbatim in Types mode
}

func TestFullModeIsIdentity(t *testing.T) {
	src := []byte("package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n")
	res, err := Transform("main.go", src, registry.Go, Full, Options{})
	require.NoError(t, err)
	assert.Equal(t, src, res.Output)
}

func TestTransformAutoResolvesLanguage(t *testing.T) {
	src := []byte("package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n")
	res, err := TransformAuto("main.go", src, Structure, "", Options{})
	require.NoError(t, err)
	assert.Contains(t, string(res.Output), "{ /* ... */ }")
}

func TestTransformAutoUnsupportedExtension(t *testing.T) {
	_, err := TransformAuto("notes.xyz", []byte("hi"), Structure, "", Options{})
	require.Error(t, err)
}

func TestStatsComputedOnlyWhenRequested(t *testing.T) {
	src := []byte("package main\n\nfunc main() {}\n")
	res, err := Transform("main.go", src, registry.Go, Structure, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.OriginalTokens)
	assert.Equal(t, 0, res.TransformedTokens)

	res2, err := Transform("main.go", src, registry.Go, Structure, Options{ComputeStats: true})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res2.OriginalTokens, 0)
}

func TestStructureMarkdown(t *testing.T) {
	src := []byte("# Title\n\n## Section\n\n#### Too Deep\n")
	res, err := Transform("doc.md", src, registry.Markdown, Structure, Options{})
	require.NoError(t, err)
	assert.Equal(t, "# Title\n## Section", string(res.Output))
}

func TestSignaturesMarkdownIncludesAllLevels(t *testing.T) {
	src := []byte("# Title\n\n###### Deepest\n")
	res, err := Transform("doc.md", src, registry.Markdown, Signatures, Options{})
	require.NoError(t, err)
	assert.Equal(t, "# Title\n###### Deepest", string(res.Output))
}

func TestStructureDeterministic(t *testing.T) {
	src := []byte("function f() { return 1 + 2; }")
	a, err := Transform("f.js", src, registry.JavaScript, Structure, Options{})
	require.NoError(t, err)
	b, err := Transform("f.js", src, registry.JavaScript, Structure, Options{})
	require.NoError(t, err)
	assert.Equal(t, a.Output, b.Output)
}
