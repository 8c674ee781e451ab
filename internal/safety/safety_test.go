package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSize(t *testing.T) {
	require.NoError(t, CheckSize("a.go", make([]byte, 1024)))
	err := CheckSize("a.go", make([]byte, MaxInputBytes+1))
	require.Error(t, err)
}

func TestCheckUTF8Boundary(t *testing.T) {
	src := []byte("héllo") // 'é' is a 2-byte rune at offset 1-3
	require.NoError(t, CheckUTF8Boundary("a.txt", src, 0))
	require.NoError(t, CheckUTF8Boundary("a.txt", src, 1))
	require.NoError(t, CheckUTF8Boundary("a.txt", src, len(src)))
	err := CheckUTF8Boundary("a.txt", src, 2) // mid-rune
	require.Error(t, err)
}

func TestCheckDepthAndNodes(t *testing.T) {
	require.NoError(t, CheckDepth("a.go", MaxDepth))
	require.Error(t, CheckDepth("a.go", MaxDepth+1))
	require.NoError(t, CheckNodeCount("a.go", MaxNodes))
	require.Error(t, CheckNodeCount("a.go", MaxNodes+1))
}

func TestCheckPathTraversal(t *testing.T) {
	require.NoError(t, CheckPath("src/main.go"))
	err := CheckPath("../etc/passwd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path-traversal")
}

func TestCheckGlobPattern(t *testing.T) {
	require.Error(t, CheckGlobPattern("/etc/*.go"))
	require.Error(t, CheckGlobPattern("../foo/*.ts"))
	require.NoError(t, CheckGlobPattern("**/*.ts"))
}
